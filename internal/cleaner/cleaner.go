// Package cleaner deletes files flagged by a scan, guarded by a protected
// location deny-list. Deletion is irreversible: there is no trash or
// recycle-bin fallback, and no retry on failure.
package cleaner

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/fenilsonani/dupescan/internal/fingerprint"
	"github.com/fenilsonani/dupescan/internal/security"
)

// Deleter removes single files after checking them against a protected
// location list. The file may have changed between the scan that produced
// its path and the delete call; DeleteVerified narrows that window but
// cannot close it.
type Deleter struct {
	protected *security.ProtectedList
	strategy  fingerprint.Strategy
	log       *logrus.Entry
}

// New creates a Deleter. The strategy is used only by DeleteVerified; a nil
// strategy selects the sampled default.
func New(protected *security.ProtectedList, strategy fingerprint.Strategy, log *logrus.Entry) *Deleter {
	if strategy == nil {
		strategy = fingerprint.Sampled{}
	}
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Deleter{
		protected: protected,
		strategy:  strategy,
		log:       log,
	}
}

// Delete removes exactly one file. Paths under a protected location are
// refused with ErrorProtectedLocation and nothing is touched. On success
// the returned message confirms the deletion.
func (d *Deleter) Delete(path string) (string, error) {
	if err := d.protected.Check(path); err != nil {
		d.log.WithField("path", path).Warn("refusing to delete protected path")
		return "", CategorizeError(path, err)
	}

	if err := os.Remove(path); err != nil {
		return "", CategorizeError(path, err)
	}

	d.log.WithField("path", path).Info("deleted file")
	return fmt.Sprintf("Deleted: %s", path), nil
}

// DeleteVerified recomputes the file's fingerprint and deletes only when it
// still matches the token captured at scan time. A mismatch or a failed
// read refuses the delete and leaves the file in place.
func (d *Deleter) DeleteVerified(path string, expected string) (string, error) {
	if err := d.protected.Check(path); err != nil {
		d.log.WithField("path", path).Warn("refusing to delete protected path")
		return "", CategorizeError(path, err)
	}

	info, err := os.Stat(path)
	if err != nil {
		return "", CategorizeError(path, err)
	}

	token, err := d.strategy.Fingerprint(path, info.Size())
	if err != nil {
		return "", CategorizeError(path, err)
	}
	if token != expected {
		return "", &DeletionError{
			Path:     path,
			Reason:   ErrorContentChanged,
			Original: fmt.Errorf("fingerprint %s does not match expected %s", token, expected),
		}
	}

	if err := os.Remove(path); err != nil {
		return "", CategorizeError(path, err)
	}

	d.log.WithField("path", path).Info("deleted verified file")
	return fmt.Sprintf("Deleted: %s", path), nil
}
