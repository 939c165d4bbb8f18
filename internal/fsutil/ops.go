package fsutil

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	cp "github.com/otiai10/copy"

	"github.com/avivilloz/commonutils/internal/constants"
	"github.com/avivilloz/commonutils/internal/logger"
)

var errNotDir = errors.New("not a directory")

// Ops performs best-effort filesystem mutations. Every call logs its outcome;
// the returned error is informational and may be ignored.
type Ops struct {
	log    *logger.Logger
	rename func(oldpath, newpath string) error
}

// New returns Ops logging through l, or through logger.L when l is nil.
func New(l *logger.Logger) *Ops {
	if l == nil {
		l = logger.L()
	}
	return &Ops{
		log:    l.WithComponent("fsutil"),
		rename: os.Rename,
	}
}

// CreateDir creates path and any missing parents. An existing directory is
// not an error.
func (o *Ops) CreateDir(path string) error {
	log := o.log.WithOp(OpCreateDir, path)

	if err := os.MkdirAll(path, constants.DirPermissions); err != nil {
		return o.fail(log, OpCreateDir, path, err)
	}

	log.Info("Directory created")
	return nil
}

// RemoveDir deletes the directory tree at path. Unlike os.RemoveAll, a
// missing path is reported as a failure.
func (o *Ops) RemoveDir(path string) error {
	log := o.log.WithOp(OpRemoveDir, path)

	info, err := os.Lstat(path)
	if err != nil {
		return o.fail(log, OpRemoveDir, path, err)
	}
	if !info.IsDir() {
		return o.fail(log, OpRemoveDir, path, fmt.Errorf("%s: %w", path, errNotDir))
	}

	if err := os.RemoveAll(path); err != nil {
		return o.fail(log, OpRemoveDir, path, err)
	}

	log.Info("Directory and all its contents removed")
	return nil
}

// CopyFile copies src into the directory dst, creating dst when missing.
// A directory lands at dst/<base(src)> and must not exist there yet. A file
// lands at dst/<base(src)>, or overwrites dst when dst is an existing file.
func (o *Ops) CopyFile(src, dst string) error {
	log := o.log.WithOp(OpCopy, src).WithTarget(dst)

	if !PathExists(dst) {
		// A failure here is logged by CreateDir and resurfaces below
		_ = o.CreateDir(dst)
	}

	info, err := os.Stat(src)
	if err != nil {
		return o.fail(log, OpCopy, src, err)
	}

	target := dst
	if info.IsDir() {
		target = filepath.Join(dst, filepath.Base(src))
		if _, err := os.Lstat(target); err == nil {
			return o.fail(log, OpCopy, target, fmt.Errorf("%s: %w", target, fs.ErrExist))
		}
	} else if st, err := os.Stat(dst); err == nil && st.IsDir() {
		target = filepath.Join(dst, filepath.Base(src))
	}

	if err := copyTree(src, target); err != nil {
		return o.fail(log, OpCopy, src, err)
	}

	size := treeSize(target)
	if info.IsDir() {
		log.Info("Directory copied", "target", target, "size", humanize.Bytes(size))
	} else {
		log.Info("File copied", "target", target, "size", humanize.Bytes(size))
	}
	return nil
}

// MoveFile moves src to dst. When dst is an existing directory src moves
// inside it. Moves across devices fall back to copy and delete.
func (o *Ops) MoveFile(src, dst string) error {
	log := o.log.WithOp(OpMove, src).WithTarget(dst)

	if _, err := os.Lstat(src); err != nil {
		return o.fail(log, OpMove, src, err)
	}

	target := dst
	if st, err := os.Stat(dst); err == nil && st.IsDir() {
		target = filepath.Join(dst, filepath.Base(src))
		if _, err := os.Lstat(target); err == nil {
			return o.fail(log, OpMove, target, fmt.Errorf("%s: %w", target, fs.ErrExist))
		}
	}

	err := o.rename(src, target)
	if err != nil && errors.Is(err, syscall.EXDEV) {
		log.Debug("Rename crossed devices, copying instead")
		err = o.moveAcross(src, target)
	}
	if err != nil {
		return o.fail(log, OpMove, src, err)
	}

	log.Info("Moved", "target", target)
	return nil
}

// moveAcross copies src next to target under a staging name, swaps it into
// place and removes src.
func (o *Ops) moveAcross(src, target string) error {
	staging := filepath.Join(filepath.Dir(target), constants.StagingPrefix+uuid.NewString())

	if err := cp.Copy(src, staging, copyOptions()); err != nil {
		_ = os.RemoveAll(staging)
		return fmt.Errorf("failed to stage %s: %w", src, err)
	}
	if err := o.rename(staging, target); err != nil {
		_ = os.RemoveAll(staging)
		return fmt.Errorf("failed to place %s: %w", target, err)
	}
	if err := os.RemoveAll(src); err != nil {
		return fmt.Errorf("copied to %s but failed to remove source: %w", target, err)
	}
	return nil
}

func (o *Ops) fail(log *logger.Logger, op, path string, err error) error {
	oe := &OpError{Op: op, Kind: classify(err), Path: path, Err: err}
	log.Error(oe.Kind.message(), "kind", string(oe.Kind), "error", err)
	return oe
}

// copyTree copies src to target. When target lies inside src, the entries of
// src are listed before target exists and target is never descended into.
func copyTree(src, target string) error {
	if !within(src, target) {
		return cp.Copy(src, target, copyOptions())
	}

	info, err := os.Stat(src)
	if err != nil {
		return err
	}
	entries, err := os.ReadDir(src)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(target, info.Mode().Perm()); err != nil {
		return err
	}

	absTarget, err := filepath.Abs(target)
	if err != nil {
		return err
	}
	opts := copyOptions()
	opts.Skip = func(_ os.FileInfo, path, _ string) (bool, error) {
		abs, err := filepath.Abs(path)
		return err == nil && abs == absTarget, nil
	}

	for _, e := range entries {
		if err := cp.Copy(filepath.Join(src, e.Name()), filepath.Join(target, e.Name()), opts); err != nil {
			return err
		}
	}
	return os.Chtimes(target, info.ModTime(), info.ModTime())
}

// within reports whether path lies strictly inside dir.
func within(dir, path string) bool {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return false
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return false
	}
	rel, err := filepath.Rel(absDir, absPath)
	if err != nil || rel == "." {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

func copyOptions() cp.Options {
	return cp.Options{
		OnSymlink: func(string) cp.SymlinkAction {
			return cp.Deep
		},
		PreserveTimes: true,
	}
}

// treeSize sums the regular file sizes under path.
func treeSize(path string) uint64 {
	var total uint64
	_ = filepath.WalkDir(path, func(_ string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.Type().IsRegular() {
			if info, err := d.Info(); err == nil {
				total += uint64(info.Size())
			}
		}
		return nil
	})
	return total
}
