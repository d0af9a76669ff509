// Package tests locates, downloading them on first use, the external test
// suites used by the emulator tests: the nes-test-roms collection and the
// Tom Harte single step processor tests. Tests depending on them are skipped
// when the files can't be fetched.
package tests

import (
	"archive/zip"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"testing"

	"github.com/go-faster/errors"
	"golang.org/x/sync/errgroup"
)

func decompress(zipFile, dest string) error {
	r, err := zip.OpenReader(zipFile)
	if err != nil {
		return err
	}
	defer r.Close()

	for _, f := range r.File {
		fname := strings.Replace(f.Name, "nes-test-roms-master", "nes-test-roms", 1)
		fpath := filepath.Join(dest, fname)
		if !strings.HasPrefix(fpath, filepath.Clean(dest)+string(os.PathSeparator)) {
			return fmt.Errorf("%s: illegal file path", fpath)
		}

		if f.FileInfo().IsDir() {
			if err := os.MkdirAll(fpath, os.ModePerm); err != nil {
				return err
			}
			continue
		}
		if err := os.MkdirAll(filepath.Dir(fpath), os.ModePerm); err != nil {
			return err
		}
		if err := extract(f, fpath); err != nil {
			return errors.Wrapf(err, "extract %s", f.Name)
		}
	}
	return nil
}

func extract(f *zip.File, dst string) error {
	rc, err := f.Open()
	if err != nil {
		return err
	}
	defer rc.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, f.Mode())
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, rc); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

func download(url string, w io.Writer) error {
	resp, err := http.Get(url)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("GET %s: %s", url, resp.Status)
	}
	_, err = io.Copy(w, resp.Body)
	return err
}

func downloadTestRoms(dest string) error {
	const url = `https://github.com/christopherpow/nes-test-roms/archive/refs/heads/master.zip`

	tmpf, err := os.CreateTemp("", "nes-test-roms-*-.zip")
	if err != nil {
		return err
	}
	defer os.Remove(tmpf.Name())
	defer tmpf.Close()

	if err := download(url, tmpf); err != nil {
		return errors.Wrap(err, "download test roms")
	}
	return errors.Wrap(decompress(tmpf.Name(), dest), "decompress test roms")
}

// download all 256 (one per opcode) Tom Harte 6502 test files into dest dir.
func downloadTomHarteProcTests(dest string) error {
	const urlfmt = `https://raw.githubusercontent.com/SingleStepTests/65x02/main/nes6502/v1/%s.json`

	tempdir, err := os.MkdirTemp("", "tom.harte.processor.tests.*")
	if err != nil {
		return err
	}

	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())

	for opcode := range 256 {
		opstr := fmt.Sprintf("%02x", opcode)
		g.Go(func() error {
			f, err := os.Create(filepath.Join(tempdir, opstr+".json"))
			if err != nil {
				return err
			}
			defer f.Close()
			return download(fmt.Sprintf(urlfmt, opstr), f)
		})
	}

	if err := g.Wait(); err != nil {
		os.RemoveAll(tempdir)
		return errors.Wrap(err, "download processor tests")
	}
	return os.Rename(tempdir, dest)
}

type lazyDir struct {
	once sync.Once
	path string
	err  error
}

// get returns the directory, creating it with fetch the first time if it
// doesn't exist. The test is skipped if the directory is not available.
func (l *lazyDir) get(tb testing.TB, name string, fetch func(dir string) error) string {
	tb.Helper()

	l.once.Do(func() {
		_, b, _, _ := runtime.Caller(0)
		testsDir := filepath.Dir(b)
		l.path = filepath.Join(testsDir, name)

		if _, err := os.Stat(l.path); errors.Is(err, fs.ErrNotExist) {
			tb.Logf("%s directory not found, downloading it...", name)
			l.err = fetch(testsDir)
		}
	})
	if l.err != nil {
		tb.Skipf("%s unavailable: %s", name, l.err)
	}
	return l.path
}

var romsDir, tomHarteDir lazyDir

// RomsPath returns the path to the nes-test-roms directory.
func RomsPath(tb testing.TB) string {
	tb.Helper()
	if testing.Short() {
		tb.Skip("skipping test rom test in short mode")
	}
	return romsDir.get(tb, "nes-test-roms", downloadTestRoms)
}

// TomHarteProcTestsPath returns the directory holding the processor tests,
// one <opcode>.json file per opcode.
func TomHarteProcTestsPath(tb testing.TB) string {
	tb.Helper()
	if testing.Short() {
		tb.Skip("skipping processor tests in short mode")
	}
	const name = "tomharte.processor.tests"
	return tomHarteDir.get(tb, name, func(dir string) error {
		return downloadTomHarteProcTests(filepath.Join(dir, name))
	})
}
