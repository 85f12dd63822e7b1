package cmd

import (
	"archive/tar"
	"archive/zip"
	"bufio"
	"compress/gzip"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/gofrs/flock"
	"github.com/spf13/cobra"

	"github.com/skilldex/skilldex-cli/internal/config"
)

// selfUpdateFlags holds flag values for the `skilldex selfupdate` command.
type selfUpdateFlags struct {
	check      bool
	dryRun     bool
	repo       string
	prerelease bool
	force      bool
	timeout    time.Duration
	verbose    bool
}

// githubRelease models the subset of GitHub Releases API fields selfupdate
// reads.
type githubRelease struct {
	TagName string        `json:"tag_name"`
	Draft   bool          `json:"draft"`
	Pre     bool          `json:"prerelease"`
	Assets  []githubAsset `json:"assets"`
}

type githubAsset struct {
	Name               string `json:"name"`
	BrowserDownloadURL string `json:"browser_download_url"`
	Size               int64  `json:"size"`
}

var selfUpdateCmd = &cobra.Command{
	Use:   "selfupdate",
	Short: "Update the skilldex CLI to the latest release",
	Long: `Download the latest skilldex release from GitHub, verify its checksum,
and swap it over the running binary.

This updates the CLI only. Skill content always comes from your local
checkout of the content repository; 'skilldex update <skill>' refreshes an
installed skill.`,
	RunE: runSelfUpdate,
}

func init() {
	var f selfUpdateFlags
	selfUpdateCmd.Flags().BoolVar(&f.check, "check", false, "Check for updates but do not download or install")
	selfUpdateCmd.Flags().BoolVar(&f.dryRun, "dry-run", false, "Resolve update details but do not download or install")
	selfUpdateCmd.Flags().StringVar(&f.repo, "repo", "skilldex/skilldex-cli", "GitHub repo in owner/name format")
	selfUpdateCmd.Flags().BoolVar(&f.prerelease, "prerelease", false, "Allow updating to a prerelease")
	selfUpdateCmd.Flags().BoolVar(&f.force, "force", false, "Reinstall even if already on the latest version")
	selfUpdateCmd.Flags().DurationVar(&f.timeout, "timeout", 30*time.Second, "Overall timeout for network operations")
	selfUpdateCmd.Flags().BoolVar(&f.verbose, "verbose", false, "Verbose output")
	selfUpdateCmd.PreRunE = func(cmd *cobra.Command, args []string) error {
		cmd.SetContext(context.WithValue(cmd.Context(), selfUpdateFlagsKey{}, f))
		return nil
	}
	rootCmd.AddCommand(selfUpdateCmd)
}

type selfUpdateFlagsKey struct{}

func runSelfUpdate(cmd *cobra.Command, _ []string) error {
	f, ok := cmd.Context().Value(selfUpdateFlagsKey{}).(selfUpdateFlags)
	if !ok {
		return fmt.Errorf("internal error: selfupdate flags missing")
	}

	// Two processes rewriting the same binary would corrupt it; serialize.
	unlock, err := acquireUpdateLock(f.timeout)
	if err != nil {
		return err
	}
	defer unlock()

	owner, repo, err := splitRepo(f.repo)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), f.timeout)
	defer cancel()

	gh := newGitHubClient()
	rel, err := gh.latestRelease(ctx, owner, repo, f.prerelease)
	if err != nil {
		return err
	}
	latestTag := strings.TrimSpace(rel.TagName)
	if latestTag == "" {
		return fmt.Errorf("invalid release: empty tag_name")
	}
	latestVersion := normalizeReleaseVersion(latestTag)

	if !f.force && version == latestVersion {
		printOK("", fmt.Sprintf("skilldex is up to date: %s", version))
		return nil
	}

	asset, err := selectReleaseAsset(rel, latestTag, runtime.GOOS, runtime.GOARCH)
	if err != nil {
		return err
	}

	switch {
	case f.check:
		printInfo("", fmt.Sprintf("Update available: %s -> %s", version, latestTag))
		printInfo("", fmt.Sprintf("Asset: %s", asset.Name))
		return nil
	case f.dryRun:
		printInfo("", fmt.Sprintf("Would update: %s -> %s", version, latestTag))
		printInfo("", fmt.Sprintf("Would download: %s", asset.BrowserDownloadURL))
		return nil
	}

	printInfo("", fmt.Sprintf("Updating: %s -> %s", version, latestTag))

	tmpDir, cleanup, err := makeUpdateTempDir()
	if err != nil {
		return err
	}
	defer cleanup()

	archivePath := filepath.Join(tmpDir, asset.Name)
	if err := gh.download(ctx, asset.BrowserDownloadURL, archivePath, f.verbose); err != nil {
		return err
	}
	if err := verifyArchiveChecksum(ctx, gh, rel, archivePath, asset.Name); err != nil {
		return err
	}

	newBinPath := filepath.Join(tmpDir, "skilldex.new")
	if runtime.GOOS == "windows" {
		newBinPath += ".exe"
	}
	if err := extractBinaryFromArchive(archivePath, newBinPath); err != nil {
		return err
	}

	currentPath, err := os.Executable()
	if err != nil {
		return fmt.Errorf("cannot determine current executable path: %w", err)
	}
	currentPath, _ = filepath.EvalSymlinks(currentPath)
	backupPath := currentPath + ".bak"

	if runtime.GOOS == "windows" {
		// A running Windows binary cannot replace itself; hand the swap to a
		// helper process that waits for us to exit.
		stagedNew := filepath.Join(filepath.Dir(currentPath), "skilldex.new.exe")
		if err := copyBinary(newBinPath, stagedNew); err != nil {
			return err
		}
		if err := spawnWindowsSwapHelper(currentPath, stagedNew, backupPath, latestVersion, f.timeout); err != nil {
			return err
		}
		printOK("", "Update staged; it will complete after this process exits.")
		return nil
	}

	if err := installWithRollback(currentPath, newBinPath, backupPath, latestVersion); err != nil {
		return err
	}
	printOK("", fmt.Sprintf("Updated to %s", latestTag))
	return nil
}

// normalizeReleaseVersion converts a release tag (e.g. "v0.3.0") to the
// version string embedded in binaries and archive names (e.g. "0.3.0").
func normalizeReleaseVersion(tag string) string {
	tag = strings.TrimSpace(tag)
	if strings.HasPrefix(tag, "v") && len(tag) > 1 {
		return strings.TrimPrefix(tag, "v")
	}
	return tag
}

func splitRepo(s string) (string, string, error) {
	owner, name, ok := strings.Cut(strings.TrimSpace(s), "/")
	if !ok || owner == "" || name == "" || strings.Contains(name, "/") {
		return "", "", fmt.Errorf("invalid --repo %q (expected owner/name)", s)
	}
	return owner, name, nil
}

// githubClient issues the small set of HTTP requests selfupdate needs, with
// a shared User-Agent and optional token auth.
type githubClient struct {
	http  *http.Client
	token string
}

func newGitHubClient() *githubClient {
	token := os.Getenv("SKILLDEX_GITHUB_TOKEN")
	if token == "" {
		token = os.Getenv("GITHUB_TOKEN")
	}
	return &githubClient{http: &http.Client{}, token: token}
}

// get performs an authenticated GET and returns the response body on any
// 2xx status. Callers own closing the body.
func (c *githubClient) get(ctx context.Context, url, what string) (io.ReadCloser, int64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set("User-Agent", "skilldex-cli")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("%s failed: %w", what, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 8192))
		resp.Body.Close()
		return nil, 0, fmt.Errorf("%s failed: %s\n%s", what, resp.Status, strings.TrimSpace(string(body)))
	}
	return resp.Body, resp.ContentLength, nil
}

// latestRelease fetches metadata for the newest release. With prereleases
// allowed it walks the release list and takes the first non-draft entry.
func (c *githubClient) latestRelease(ctx context.Context, owner, repo string, allowPrerelease bool) (*githubRelease, error) {
	if !allowPrerelease {
		url := fmt.Sprintf("https://api.github.com/repos/%s/%s/releases/latest", owner, repo)
		body, _, err := c.get(ctx, url, "github api request")
		if err != nil {
			return nil, err
		}
		defer body.Close()
		var rel githubRelease
		if err := json.NewDecoder(body).Decode(&rel); err != nil {
			return nil, fmt.Errorf("cannot decode release response: %w", err)
		}
		return &rel, nil
	}

	url := fmt.Sprintf("https://api.github.com/repos/%s/%s/releases", owner, repo)
	body, _, err := c.get(ctx, url, "github api request")
	if err != nil {
		return nil, err
	}
	defer body.Close()
	var rels []githubRelease
	if err := json.NewDecoder(body).Decode(&rels); err != nil {
		return nil, fmt.Errorf("cannot decode releases response: %w", err)
	}
	for i := range rels {
		if !rels[i].Draft {
			return &rels[i], nil
		}
	}
	return nil, fmt.Errorf("no releases found")
}

// download streams url into dest, reporting progress on stderr.
func (c *githubClient) download(ctx context.Context, url, dest string, verbose bool) error {
	body, total, err := c.get(ctx, url, "download")
	if err != nil {
		return err
	}
	defer body.Close()

	out, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("cannot create %s: %w", dest, err)
	}
	defer out.Close()

	pw := &progressWriter{total: total}
	n, err := io.Copy(out, io.TeeReader(body, pw))
	pw.finish()
	if err != nil {
		return fmt.Errorf("download read failed: %w", err)
	}
	if verbose {
		printInfo("", fmt.Sprintf("Downloaded %d bytes to %s", n, dest))
	}
	return nil
}

// progressWriter counts bytes flowing through it and repaints a one-line
// progress indicator at most every 200ms.
type progressWriter struct {
	total     int64
	done      int64
	lastPaint time.Time
}

func (p *progressWriter) Write(b []byte) (int, error) {
	p.done += int64(len(b))
	if time.Since(p.lastPaint) > 200*time.Millisecond {
		p.paint()
		p.lastPaint = time.Now()
	}
	return len(b), nil
}

func (p *progressWriter) paint() {
	if p.total > 0 {
		pct := float64(p.done) / float64(p.total) * 100
		fmt.Fprintf(os.Stderr, "\rDownloading... %s / %s (%.1f%%)", humanBytes(p.done), humanBytes(p.total), pct)
		return
	}
	fmt.Fprintf(os.Stderr, "\rDownloading... %s", humanBytes(p.done))
}

func (p *progressWriter) finish() {
	p.paint()
	fmt.Fprintln(os.Stderr)
}

// humanBytes formats a byte count in a human-friendly binary unit.
func humanBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for v := n / unit; v >= unit; v /= unit {
		div *= unit
		exp++
	}
	prefix := "KMGTPE"[exp]
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), prefix)
}

// selectReleaseAsset chooses the release archive for the current platform.
func selectReleaseAsset(rel *githubRelease, versionTag, goos, goarch string) (*githubAsset, error) {
	expected := expectedArchiveName(versionTag, goos, goarch)
	names := make([]string, 0, len(rel.Assets))
	for i := range rel.Assets {
		if rel.Assets[i].Name == expected {
			return &rel.Assets[i], nil
		}
		names = append(names, rel.Assets[i].Name)
	}
	return nil, fmt.Errorf("no suitable release asset found for %s/%s (expected %q). Available: %s", goos, goarch, expected, strings.Join(names, ", "))
}

// expectedArchiveName returns the GoReleaser archive filename for a version
// and platform.
func expectedArchiveName(versionTag, goos, goarch string) string {
	ext := "tar.gz"
	if goos == "windows" {
		ext = "zip"
	}
	return fmt.Sprintf("skilldex_%s_%s_%s.%s", normalizeReleaseVersion(versionTag), goos, goarch, ext)
}

// makeUpdateTempDir creates a scratch directory under a base that is
// actually writable, probing candidates with a throwaway file.
func makeUpdateTempDir() (string, func(), error) {
	candidates := []string{os.TempDir()}
	if cacheDir, err := os.UserCacheDir(); err == nil && cacheDir != "" {
		candidates = append(candidates, filepath.Join(cacheDir, "skilldex", "tmp"))
	}
	if dir, err := config.Dir(); err == nil {
		candidates = append(candidates, filepath.Join(dir, "tmp"))
	}

	for _, base := range candidates {
		if base == "" || os.MkdirAll(base, 0o755) != nil {
			continue
		}
		probe := filepath.Join(base, ".skilldex-probe-tmp")
		if os.WriteFile(probe, nil, 0o644) != nil {
			continue
		}
		_ = os.Remove(probe)

		tmp, err := os.MkdirTemp(base, "skilldex-update-*")
		if err != nil {
			return "", nil, fmt.Errorf("cannot create temp dir: %w", err)
		}
		return tmp, func() { _ = os.RemoveAll(tmp) }, nil
	}
	return "", nil, fmt.Errorf("no writable temp directory found")
}

// verifyArchiveChecksum compares the downloaded archive against the SHA256
// recorded in the release's checksum manifest. A release shipping no
// manifest gets a warning instead of a failure.
func verifyArchiveChecksum(ctx context.Context, gh *githubClient, rel *githubRelease, archivePath, assetName string) error {
	checksumAsset, found := findChecksumAsset(rel)
	if !found {
		printWarn("", "checksums.txt not found in release; skipping checksum verification")
		return nil
	}

	body, _, err := gh.get(ctx, checksumAsset.BrowserDownloadURL, "checksum download")
	if err != nil {
		return err
	}
	defer body.Close()
	expected, err := parseExpectedSHA256(body, assetName)
	if err != nil {
		return err
	}

	actual, err := fileSHA256Hex(archivePath)
	if err != nil {
		return err
	}
	if !strings.EqualFold(expected, actual) {
		return fmt.Errorf("checksum mismatch for %s\nexpected: %s\nactual:   %s", assetName, expected, actual)
	}
	printOK("", "Checksum verified.")
	return nil
}

// findChecksumAsset finds checksums.txt (preferred) or any checksum-like
// asset in a release.
func findChecksumAsset(rel *githubRelease) (*githubAsset, bool) {
	fallback := -1
	for i := range rel.Assets {
		if rel.Assets[i].Name == "checksums.txt" {
			return &rel.Assets[i], true
		}
		if fallback < 0 && strings.Contains(strings.ToLower(rel.Assets[i].Name), "checksum") {
			fallback = i
		}
	}
	if fallback >= 0 {
		return &rel.Assets[fallback], true
	}
	return nil, false
}

// parseExpectedSHA256 parses a checksums manifest and returns the SHA256 for
// filename. Lines are whitespace-separated with the hex digest first and the
// filename last, optionally "*"-prefixed for binary mode:
//
//	<sha256> <filename>
func parseExpectedSHA256(r io.Reader, filename string) (string, error) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 2 {
			continue
		}
		name := strings.TrimPrefix(fields[len(fields)-1], "*")
		if name != filename {
			continue
		}
		digest := fields[0]
		if _, err := hex.DecodeString(digest); err != nil {
			return "", fmt.Errorf("invalid checksum hex for %s", filename)
		}
		return strings.ToLower(digest), nil
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("checksum parse failed: %w", err)
	}
	return "", fmt.Errorf("checksum for %s not found", filename)
}

// fileSHA256Hex returns the SHA256 of a file as lowercase hex.
func fileSHA256Hex(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// extractBinaryFromArchive extracts the skilldex binary from an archive into
// destPath.
func extractBinaryFromArchive(archivePath, destPath string) error {
	lower := strings.ToLower(archivePath)
	switch {
	case strings.HasSuffix(lower, ".tar.gz"):
		return extractFromTarGz(archivePath, destPath)
	case strings.HasSuffix(lower, ".zip"):
		return extractFromZip(archivePath, destPath)
	default:
		return fmt.Errorf("unsupported archive format: %s", archivePath)
	}
}

func releaseBinaryName() string {
	if runtime.GOOS == "windows" {
		return "skilldex.exe"
	}
	return "skilldex"
}

// isBinaryEntry reports whether an archive entry is the release binary,
// after path sanitation.
func isBinaryEntry(entryName string, isDir bool) bool {
	clean := sanitizeArchivePath(entryName)
	return clean != "" && !isDir && filepath.Base(clean) == releaseBinaryName()
}

func extractFromTarGz(archivePath, destPath string) error {
	f, err := os.Open(archivePath)
	if err != nil {
		return err
	}
	defer f.Close()
	gzr, err := gzip.NewReader(f)
	if err != nil {
		return err
	}
	defer gzr.Close()

	tr := tar.NewReader(gzr)
	for {
		h, err := tr.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}
		if isBinaryEntry(h.Name, h.FileInfo().IsDir()) {
			return writeExecutable(destPath, tr)
		}
	}
	return fmt.Errorf("binary %s not found in archive", releaseBinaryName())
}

func extractFromZip(archivePath, destPath string) error {
	r, err := zip.OpenReader(archivePath)
	if err != nil {
		return err
	}
	defer r.Close()

	for _, zf := range r.File {
		if !isBinaryEntry(zf.Name, zf.FileInfo().IsDir()) {
			continue
		}
		rc, err := zf.Open()
		if err != nil {
			return err
		}
		defer rc.Close()
		return writeExecutable(destPath, rc)
	}
	return fmt.Errorf("binary %s not found in archive", releaseBinaryName())
}

// sanitizeArchivePath rejects absolute paths and traversal sequences in
// archive entries.
func sanitizeArchivePath(name string) string {
	name = strings.TrimPrefix(strings.ReplaceAll(name, "\\", "/"), "./")
	if name == "" || strings.HasPrefix(name, "/") {
		return ""
	}
	for _, part := range strings.Split(name, "/") {
		if part == ".." {
			return ""
		}
	}
	if clean := filepath.Clean(name); clean != "." {
		return clean
	}
	return ""
}

// writeExecutable writes r to path with the execute bits set.
func writeExecutable(path string, r io.Reader) error {
	out, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o755)
	if err != nil {
		return err
	}
	defer out.Close()
	_, err = io.Copy(out, r)
	return err
}

// installWithRollback replaces currentPath with newPath, verifies the new
// binary, and rolls back on failure. A binary failing verification parks at
// <path>.failed for inspection.
func installWithRollback(currentPath, newPath, backupPath, expectedVersion string) error {
	_ = os.Remove(backupPath)
	if err := os.Rename(currentPath, backupPath); err != nil {
		return fmt.Errorf("cannot create backup: %w", err)
	}
	if err := os.Rename(newPath, currentPath); err != nil {
		_ = os.Rename(backupPath, currentPath)
		return fmt.Errorf("cannot replace binary: %w", err)
	}
	if err := verifyBinaryVersion(currentPath, expectedVersion); err != nil {
		_ = os.Rename(currentPath, currentPath+".failed")
		_ = os.Rename(backupPath, currentPath)
		return err
	}
	if err := os.Remove(backupPath); err != nil {
		printWarn("", fmt.Sprintf("cannot remove backup: %v", err))
	}
	return nil
}

// verifyBinaryVersion executes the binary at path with -v and compares the
// reported version to expected.
func verifyBinaryVersion(path, expected string) error {
	out, err := exec.Command(path, "-v").Output()
	if err != nil {
		return fmt.Errorf("version verification failed: %w", err)
	}
	if got := strings.TrimSpace(string(out)); got != expected {
		return fmt.Errorf("version verification failed: expected %s, got %s", expected, got)
	}
	return nil
}

// spawnWindowsSwapHelper starts the hidden helper command that swaps the
// binaries after this process exits.
func spawnWindowsSwapHelper(currentPath, newPath, backupPath, expectedVersion string, timeout time.Duration) error {
	c := exec.Command(currentPath, "__selfupdate-swap",
		"--pid", strconv.Itoa(os.Getpid()),
		"--current", currentPath,
		"--new", newPath,
		"--backup", backupPath,
		"--expected", expectedVersion,
		"--timeout", timeout.String(),
	)
	c.Stdout = os.Stdout
	c.Stderr = os.Stderr
	return c.Start()
}

// acquireUpdateLock obtains the per-user selfupdate lock, waiting up to
// timeout for a concurrent update to finish.
func acquireUpdateLock(timeout time.Duration) (func(), error) {
	lockPath, err := updateLockPath()
	if err != nil {
		return nil, err
	}
	l := flock.New(lockPath)
	deadline := time.Now().Add(timeout)
	for {
		locked, err := l.TryLock()
		if err != nil {
			return nil, fmt.Errorf("cannot acquire update lock: %w", err)
		}
		if locked {
			return func() { _ = l.Unlock() }, nil
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("another update is in progress (lock: %s)", lockPath)
		}
		time.Sleep(200 * time.Millisecond)
	}
}

// updateLockPath returns the advisory lock file under ~/.skilldex/.
func updateLockPath() (string, error) {
	dir, err := config.Dir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("cannot create %s: %w", dir, err)
	}
	return filepath.Join(dir, "update.lock"), nil
}

// copyBinary copies the staged binary to dst with execute permissions.
func copyBinary(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()
	out, err := os.OpenFile(dst, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o755)
	if err != nil {
		return err
	}
	defer out.Close()
	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return nil
}
