package gitx

import (
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/interpretive-systems/gitdeck/internal/model"
)

func TestStatusAndDiffForFile(t *testing.T) {
	dir := initRepo(t)

	write(t, filepath.Join(dir, "f1.txt"), "one\nline\n")
	write(t, filepath.Join(dir, "del.txt"), "to delete\n")
	write(t, filepath.Join(dir, "clean.txt"), "clean\n")
	mustRun(t, dir, "git", "add", ".")
	mustRun(t, dir, "git", "commit", "-q", "-m", "init")

	write(t, filepath.Join(dir, "f1.txt"), "one\nline changed\n")
	write(t, filepath.Join(dir, "new.txt"), "brand new\nsecond\n")
	write(t, filepath.Join(dir, "staged.txt"), "staged\n")
	mustRun(t, dir, "git", "add", "staged.txt")
	if err := os.Remove(filepath.Join(dir, "del.txt")); err != nil {
		t.Fatal(err)
	}

	repo := openRepo(t, dir)
	files, err := repo.Status()
	if err != nil {
		t.Fatalf("Status error: %v", err)
	}
	want := []model.FileStatus{
		{Path: "del.txt", Status: " D"},
		{Path: "f1.txt", Status: " M"},
		{Path: "new.txt", Status: "??"},
		{Path: "staged.txt", Status: "A "},
	}
	if len(files) != len(want) {
		t.Fatalf("Status = %+v, want %+v", files, want)
	}
	for i := range want {
		if files[i] != want[i] {
			t.Errorf("files[%d] = %+v, want %+v", i, files[i], want[i])
		}
	}

	d, err := repo.DiffForFile("f1.txt")
	if err != nil {
		t.Fatalf("DiffForFile error: %v", err)
	}
	if !strings.Contains(d, "-line") || !strings.Contains(d, "+line changed") {
		t.Fatalf("unexpected diff: %s", d)
	}

	d, err = repo.DiffForFile("new.txt")
	if err != nil {
		t.Fatalf("DiffForFile(new) error: %v", err)
	}
	if d != "New file: new.txt\n--- /dev/null\n+++ new.txt\n+brand new\n+second\n" {
		t.Fatalf("unexpected untracked diff: %q", d)
	}

	d, err = repo.DiffForFile("staged.txt")
	if err != nil {
		t.Fatalf("DiffForFile(staged) error: %v", err)
	}
	if !strings.Contains(d, "+staged") {
		t.Fatalf("expected staged diff, got %q", d)
	}

	d, err = repo.DiffForFile("clean.txt")
	if err != nil {
		t.Fatalf("DiffForFile(clean) error: %v", err)
	}
	if d != "No changes to display for: clean.txt" {
		t.Fatalf("unexpected clean diff: %q", d)
	}
}

func TestStageCommitAndHistory(t *testing.T) {
	dir := initRepo(t)
	write(t, filepath.Join(dir, "a.txt"), "a\n")
	mustRun(t, dir, "git", "add", ".")
	mustRun(t, dir, "git", "commit", "-q", "-m", "init")

	write(t, filepath.Join(dir, "a.txt"), "a2\n")
	write(t, filepath.Join(dir, "b.txt"), "b\n")

	repo := openRepo(t, dir)
	if err := repo.StageFile("a.txt"); err != nil {
		t.Fatalf("StageFile error: %v", err)
	}
	files, err := repo.Status()
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 2 || files[0].Status != "M " || files[1].Status != "??" {
		t.Fatalf("unexpected status after StageFile: %+v", files)
	}

	if err := repo.StageAll(); err != nil {
		t.Fatalf("StageAll error: %v", err)
	}
	if err := repo.Commit("second commit\n\nwith a body"); err != nil {
		t.Fatalf("Commit error: %v", err)
	}
	if err := repo.Commit("   "); err == nil {
		t.Fatal("expected error for blank commit message")
	}

	files, err = repo.Status()
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 0 {
		t.Fatalf("expected no changes after commit, got %v", files)
	}

	commits, err := repo.Commits(DefaultCommitLimit)
	if err != nil {
		t.Fatalf("Commits error: %v", err)
	}
	if len(commits) != 2 {
		t.Fatalf("expected 2 commits, got %+v", commits)
	}
	top := commits[0]
	if top.Message != "second commit" {
		t.Fatalf("message = %q, want first line only", top.Message)
	}
	if len(top.ID) != 7 {
		t.Fatalf("id = %q, want 7 chars", top.ID)
	}
	if top.Author != "Test User" {
		t.Fatalf("author = %q", top.Author)
	}
	if _, err := time.Parse("2006-01-02 15:04:05", top.Date); err != nil {
		t.Fatalf("date %q: %v", top.Date, err)
	}

	limited, err := repo.Commits(1)
	if err != nil {
		t.Fatal(err)
	}
	if len(limited) != 1 || limited[0].ID != top.ID {
		t.Fatalf("Commits(1) = %+v", limited)
	}
}

func TestStatusReportsRenameAsAddAndDelete(t *testing.T) {
	dir := initRepo(t)
	write(t, filepath.Join(dir, "old.txt"), "content\n")
	mustRun(t, dir, "git", "add", ".")
	mustRun(t, dir, "git", "commit", "-q", "-m", "init")
	mustRun(t, dir, "git", "mv", "old.txt", "new.txt")

	files, err := openRepo(t, dir).Status()
	if err != nil {
		t.Fatalf("Status error: %v", err)
	}
	want := []model.FileStatus{
		{Path: "new.txt", Status: model.StatusIndexNew},
		{Path: "old.txt", Status: model.StatusIndexDeleted},
	}
	if len(files) != len(want) {
		t.Fatalf("got %+v, want %+v", files, want)
	}
	for i := range want {
		if files[i] != want[i] {
			t.Errorf("entry[%d] = %+v, want %+v", i, files[i], want[i])
		}
	}
}

func TestBranchLifecycle(t *testing.T) {
	dir := initRepo(t)
	write(t, filepath.Join(dir, "a.txt"), "a\n")
	mustRun(t, dir, "git", "add", ".")
	mustRun(t, dir, "git", "commit", "-q", "-m", "init")

	repo := openRepo(t, dir)
	if err := repo.CreateBranch("feature", "main"); err != nil {
		t.Fatalf("CreateBranch error: %v", err)
	}
	if err := repo.CreateBranch("feature", "main"); err == nil {
		t.Fatal("expected error creating an existing branch")
	}
	if err := repo.CreateBranch("bad..name", "main"); err == nil {
		t.Fatal("expected error for invalid branch name")
	}
	if err := repo.CreateBranch("other", "no-such-base"); err == nil {
		t.Fatal("expected error for unknown base")
	}

	branches, err := repo.Branches()
	if err != nil {
		t.Fatalf("Branches error: %v", err)
	}
	want := []model.BranchInfo{{Name: "feature"}, {Name: "main", IsCurrent: true}}
	if len(branches) != 2 || branches[0] != want[0] || branches[1] != want[1] {
		t.Fatalf("Branches = %+v, want %+v", branches, want)
	}

	if err := repo.CheckoutBranch("feature"); err != nil {
		t.Fatalf("CheckoutBranch error: %v", err)
	}
	cur, err := repo.CurrentBranch()
	if err != nil || cur != "feature" {
		t.Fatalf("CurrentBranch = %q, %v", cur, err)
	}
	if err := repo.DeleteBranch("feature"); err == nil {
		t.Fatal("expected error deleting the checked-out branch")
	}
	if err := repo.CheckoutBranch("main"); err != nil {
		t.Fatal(err)
	}
	if err := repo.DeleteBranch("feature"); err != nil {
		t.Fatalf("DeleteBranch error: %v", err)
	}
	branches, err = repo.Branches()
	if err != nil {
		t.Fatal(err)
	}
	if len(branches) != 1 || branches[0].Name != "main" {
		t.Fatalf("Branches after delete = %+v", branches)
	}

	mustRun(t, dir, "git", "checkout", "-q", "--detach")
	cur, err = repo.CurrentBranch()
	if err != nil || cur != "HEAD" {
		t.Fatalf("detached CurrentBranch = %q, %v", cur, err)
	}
}

func TestUnbornBranch(t *testing.T) {
	dir := initRepo(t)
	repo := openRepo(t, dir)

	cur, err := repo.CurrentBranch()
	if err != nil || cur != "main" {
		t.Fatalf("CurrentBranch = %q, %v", cur, err)
	}
	commits, err := repo.Commits(DefaultCommitLimit)
	if err != nil || len(commits) != 0 {
		t.Fatalf("Commits = %+v, %v", commits, err)
	}
	branches, err := repo.Branches()
	if err != nil || len(branches) != 0 {
		t.Fatalf("Branches = %+v, %v", branches, err)
	}
}

func TestOpenDiscoversRootFromSubdirectory(t *testing.T) {
	dir := initRepo(t)
	sub := filepath.Join(dir, "a", "b")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	repo, err := Open(sub)
	if err != nil {
		t.Fatalf("Open error: %v", err)
	}
	got, _ := filepath.EvalSymlinks(repo.Root())
	want, _ := filepath.EvalSymlinks(dir)
	if got != want {
		t.Fatalf("Root = %q, want %q", got, want)
	}
	if repo.Remote() != DefaultRemote {
		t.Fatalf("Remote = %q", repo.Remote())
	}
}

func TestOpenOutsideRepository(t *testing.T) {
	if _, err := Open(t.TempDir()); err == nil {
		t.Fatal("expected error outside a repository")
	}
}

func initRepo(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	mustRun(t, dir, "git", "-c", "init.defaultBranch=main", "init", "-q")
	mustRun(t, dir, "git", "config", "user.email", "test@example.com")
	mustRun(t, dir, "git", "config", "user.name", "Test User")
	return dir
}

func openRepo(t *testing.T, dir string) *Repo {
	t.Helper()
	quiet := OSRunner{Stdin: strings.NewReader(""), Stdout: io.Discard, Stderr: io.Discard}
	repo, err := Open(dir, WithRunner(quiet))
	if err != nil {
		t.Fatalf("Open error: %v", err)
	}
	return repo
}

func mustRun(t *testing.T, dir string, name string, args ...string) {
	t.Helper()
	cmd := exec.Command(name, args...)
	cmd.Dir = dir
	if out, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("command %s %v failed: %v\n%s", name, args, err, out)
	}
}

func write(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}
