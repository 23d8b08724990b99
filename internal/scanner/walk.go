package scanner

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/solomon-platform/gorm-postgres-enforcer/internal/model"
	apperrors "github.com/solomon-platform/gorm-postgres-enforcer/internal/pkg/errors"
)

// Scanner walks one source tree. The zero value is not usable; construct
// with New.
type Scanner struct {
	root string
	log  *zap.Logger
}

// New validates root and returns a Scanner for it. The root is resolved to
// an absolute path so that directory exclusions see every path component.
func New(root string, log *zap.Logger) (*Scanner, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, apperrors.RootInvalid(root, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, apperrors.RootInvalid(root, err)
	}
	if !info.IsDir() {
		return nil, apperrors.RootInvalid(root, errors.New("not a directory"))
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Scanner{root: abs, log: log}, nil
}

// Root returns the absolute scan root.
func (s *Scanner) Root() string {
	return s.root
}

// Run scans the tree sequentially and returns all violations in traversal
// order. The first I/O failure aborts the scan; a partial result is never
// returned.
func (s *Scanner) Run(ctx context.Context) ([]model.Violation, error) {
	var violations []model.Violation

	err := filepath.WalkDir(s.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return apperrors.IOFailure(path, err)
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}

		if d.IsDir() {
			if path != s.root && skipDirs[d.Name()] {
				s.log.Debug("skipping directory", zap.String("path", path))
				return filepath.SkipDir
			}
			return nil
		}

		if !ShouldScan(path) {
			return nil
		}

		s.log.Debug("scanning file", zap.String("path", path))
		found, err := ScanFile(path, s.root)
		if err != nil {
			return apperrors.IOFailure(path, err)
		}
		violations = append(violations, found...)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Debug("scan complete",
		zap.Int("violations", len(violations)),
		zap.String("root", s.root),
	)
	return violations, nil
}
