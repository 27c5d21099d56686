package relocator

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/organizer/pkg/errors"
	"github.com/arthur-debert/organizer/pkg/filesystem"
	"github.com/arthur-debert/organizer/pkg/logging"
	"github.com/arthur-debert/organizer/pkg/types"
	"github.com/rs/zerolog"
)

const folderPerm fs.FileMode = 0755

// Relocator moves files into category folders on a filesystem.
type Relocator struct {
	fs     types.FS
	logger zerolog.Logger
}

// New creates a relocator on fsys. A nil fsys uses the OS filesystem.
func New(fsys types.FS) *Relocator {
	if fsys == nil {
		fsys = filesystem.NewOS()
	}
	return &Relocator{
		fs:     fsys,
		logger: logging.GetLogger("relocator"),
	}
}

// Organize relocates source into destRoot/category on the OS filesystem.
func Organize(source, destRoot, category string, ignoreHidden bool) Outcome {
	return New(nil).Organize(source, destRoot, category, ignoreHidden)
}

// Organize moves source into destRoot/category, creating the folder when
// needed and picking a free name on collision.
func (r *Relocator) Organize(source, destRoot, category string, ignoreHidden bool) Outcome {
	return r.relocate(source, destRoot, category, ignoreHidden, false)
}

// Plan reports the outcome Organize would produce without creating folders
// or moving anything. Each call judges the tree as it is now: moves planned
// earlier in the same run are not taken into account, so a file blocking a
// category folder that a real run would move first still shows as a failure.
func (r *Relocator) Plan(source, destRoot, category string, ignoreHidden bool) Outcome {
	return r.relocate(source, destRoot, category, ignoreHidden, true)
}

func (r *Relocator) relocate(source, destRoot, category string, ignoreHidden, dryRun bool) Outcome {
	out := Outcome{Source: source, Category: category}
	logger := r.logger.With().
		Str("source", source).
		Str("category", category).
		Bool("dryRun", dryRun).
		Logger()

	info, err := r.fs.Stat(source)
	if err != nil {
		return r.fail(logger, out, ReasonInvalidSource,
			errors.Wrapf(err, errors.ErrInvalidSource, "cannot stat %s", source))
	}
	if !info.Mode().IsRegular() {
		return r.fail(logger, out, ReasonInvalidSource,
			errors.Newf(errors.ErrInvalidSource, "%s is not a regular file", source).
				WithDetail("mode", info.Mode().String()))
	}

	name := filepath.Base(source)
	if !validName(name) {
		return r.fail(logger, out, ReasonInvalidName,
			errors.Newf(errors.ErrInvalidName, "no file name in %q", source))
	}

	if ignoreHidden && strings.HasPrefix(name, ".") {
		logger.Debug().Msg("Skipping hidden file")
		out.Kind = Ignored
		out.Reason = ReasonHidden
		return out
	}

	folder := filepath.Join(destRoot, category)
	if err := r.ensureFolder(folder, dryRun); err != nil {
		return r.fail(logger, out, ReasonDirCreate, err)
	}

	candidate := filepath.Join(folder, name)
	taken, err := r.exists(candidate)
	if err != nil {
		return r.fail(logger, out, ReasonCollisionCheck, err)
	}

	kind := Moved
	dest := candidate
	if taken {
		same, err := r.fs.SameFile(source, candidate)
		if err != nil {
			// A dangling symlink or unreadable entry still occupies the name.
			logger.Debug().Err(err).Str("candidate", candidate).Msg("Could not compare with existing file")
		}
		if same {
			logger.Debug().Str("path", candidate).Msg("File already in place")
			out.Kind = Ignored
			out.Reason = ReasonAlreadyOrganized
			out.Path = candidate
			return out
		}

		dest, err = r.nextFreeName(folder, name)
		if err != nil {
			return r.fail(logger, out, ReasonCollisionCheck, err)
		}
		kind = Renamed
		logger.Debug().
			Str("occupied", candidate).
			Str("destination", dest).
			Msg("Name collision, using disambiguated name")
	}

	if !dryRun {
		if err := r.fs.Rename(source, dest); err != nil {
			code := errors.ErrMove
			if stderrors.Is(err, fs.ErrExist) {
				code = errors.ErrDestinationExists
			}
			return r.fail(logger, out, ReasonMove,
				errors.Wrapf(err, code, "cannot move %s to %s", source, dest).
					WithDetails(map[string]interface{}{
						"source":      source,
						"destination": dest,
					}))
		}
	}

	out.Kind = kind
	out.Path = dest
	logger.Info().
		Str("destination", dest).
		Stringer("outcome", kind).
		Msg("File relocated")
	return out
}

// ensureFolder creates folder and its parents. In dry-run mode it only checks
// that nothing but a directory occupies the path.
func (r *Relocator) ensureFolder(folder string, dryRun bool) error {
	info, err := r.fs.Stat(folder)
	switch {
	case err == nil && info.IsDir():
		return nil
	case err == nil:
		return errors.Newf(errors.ErrDirCreate, "%s exists and is not a directory", folder)
	case !stderrors.Is(err, fs.ErrNotExist):
		return errors.Wrapf(err, errors.ErrDirCreate, "cannot stat %s", folder)
	}

	if dryRun {
		return nil
	}
	if err := r.fs.MkdirAll(folder, folderPerm); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "cannot create %s", folder)
	}
	r.logger.Debug().Str("folder", folder).Msg("Created category folder")
	return nil
}

// exists reports whether anything, including a dangling symlink, occupies path.
func (r *Relocator) exists(path string) (bool, error) {
	_, err := r.fs.Lstat(path)
	if err == nil {
		return true, nil
	}
	if stderrors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, errors.Wrapf(err, errors.ErrFileAccess, "cannot stat %s", path)
}

// nextFreeName returns folder/stem_N.ext for the smallest N >= 1 that is free.
func (r *Relocator) nextFreeName(folder, name string) (string, error) {
	stem, ext := SplitName(name)
	for n := 1; ; n++ {
		candidate := filepath.Join(folder, fmt.Sprintf("%s_%d%s", stem, n, ext))
		taken, err := r.exists(candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
	}
}

// SplitName splits a file name into stem and extension (with its dot) at the
// last dot. A leading dot does not start an extension: ".env" has no extension.
func SplitName(name string) (stem, ext string) {
	idx := strings.LastIndexByte(name, '.')
	if idx <= 0 {
		return name, ""
	}
	return name[:idx], name[idx:]
}

func validName(name string) bool {
	return name != "" && name != "." && name != ".." && name != string(filepath.Separator)
}

func (r *Relocator) fail(logger zerolog.Logger, out Outcome, reason string, err error) Outcome {
	logger.Warn().Err(err).Str("reason", reason).Msg("Relocation failed")
	out.Kind = Failed
	out.Reason = reason
	out.Err = err
	return out
}
