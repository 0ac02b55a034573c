package jobs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/derschnepf/Synergy-app/internal/metrics"
	"github.com/derschnepf/Synergy-app/internal/repos"
)

const backupTimeLayout = "20060102T150405Z"

// StartBackups copies every collection into dir each interval and keeps the newest keep files
// per collection. A zero interval disables the job.
func StartBackups(ctx context.Context, r *repos.Repository, dir string, interval time.Duration, keep int) {
	if interval <= 0 {
		log.Info().Msg("backups disabled")
		return
	}
	go func() {
		t := time.NewTicker(interval)
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case now := <-t.C:
				if err := BackupAll(ctx, r, dir, now.UTC(), keep); err != nil {
					log.Error().Err(err).Msg("backup job failed")
				}
			}
		}
	}()
}

// BackupAll writes one backup file per collection stamped with now.
func BackupAll(ctx context.Context, r *repos.Repository, dir string, now time.Time, keep int) error {
	var firstErr error
	for _, c := range r.All() {
		dst := filepath.Join(dir, fmt.Sprintf("%s-%s.json", c.Name(), now.Format(backupTimeLayout)))
		n, err := c.Backup(ctx, dst)
		if err != nil {
			metrics.BackupsTotal.WithLabelValues(c.Name(), "error").Inc()
			log.Error().Err(err).Str("collection", c.Name()).Msg("backup failed")
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		metrics.BackupsTotal.WithLabelValues(c.Name(), "ok").Inc()
		log.Info().Str("collection", c.Name()).Str("path", dst).Int("records", n).Msg("backup written")
		if err := prune(dir, c.Name(), keep); err != nil {
			log.Warn().Err(err).Str("collection", c.Name()).Msg("backup prune failed")
		}
	}
	return firstErr
}

// prune removes all but the newest keep backups of one collection. keep <= 0 keeps everything.
func prune(dir, name string, keep int) error {
	if keep <= 0 {
		return nil
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}
	var files []string
	for _, e := range entries {
		n := e.Name()
		if e.IsDir() || !strings.HasPrefix(n, name+"-") || !strings.HasSuffix(n, ".json") {
			continue
		}
		files = append(files, n)
	}
	if len(files) <= keep {
		return nil
	}
	// timestamps sort lexically
	sort.Strings(files)
	for _, n := range files[:len(files)-keep] {
		if err := os.Remove(filepath.Join(dir, n)); err != nil {
			return err
		}
	}
	return nil
}
