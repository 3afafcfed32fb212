package cmd

import (
	"errors"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/morrilet/GMTK-2022/internal/catalog"
	"github.com/morrilet/GMTK-2022/internal/store"
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Record the current table in the snapshot history",
	Args:  cobra.NoArgs,
	RunE:  takeSnapshot,
}

var diffCmd = &cobra.Command{
	Use:   "diff",
	Short: "Compare the current table with the latest snapshot",
	Long: `Lists entries added, removed or re-valued since the last snapshot. A
re-valued entry means an object was renamed or recreated in the Wwise
project, which breaks every consumer holding the old ID, so it fails the
command.`,
	Args: cobra.NoArgs,
	RunE: diffSnapshot,
}

func init() {
	rootCmd.AddCommand(snapshotCmd)
	rootCmd.AddCommand(diffCmd)
	snapshotCmd.Flags().Bool("list", false, "list recorded snapshots instead of taking one")
}

func takeSnapshot(cmd *cobra.Command, _ []string) error {
	db, err := store.GetDB(viper.GetString("database"))
	if err != nil {
		return err
	}

	if listFlag, _ := cmd.Flags().GetBool("list"); listFlag {
		path, err := inputPath()
		if err != nil {
			return err
		}
		snaps, err := store.ListSnapshots(db, sourceKey(path))
		if err != nil {
			return err
		}
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		for _, s := range snaps {
			fmt.Fprintf(w, "%s\t%s\t%d\t%.12s\n", s.ID, s.CreatedAt.Local().Format(time.DateTime), s.Entries, s.Digest)
		}
		return w.Flush()
	}

	t, source, err := loadTable()
	if err != nil {
		return err
	}
	snap, err := store.SaveSnapshot(db, source, t)
	if err != nil {
		return err
	}
	log.Info().
		Str("id", snap.ID).
		Str("source", source).
		Str("digest", snap.Digest).
		Int("entries", snap.Entries).
		Msg("Snapshot recorded")
	fmt.Fprintln(cmd.OutOrStdout(), snap.ID)
	return nil
}

func diffSnapshot(cmd *cobra.Command, _ []string) error {
	db, err := store.GetDB(viper.GetString("database"))
	if err != nil {
		return err
	}

	t, source, err := loadTable()
	if err != nil {
		return err
	}

	snap, prev, err := store.LatestSnapshot(db, source)
	if errors.Is(err, store.ErrNoSnapshot) {
		log.Info().Str("source", source).Msg("No snapshot recorded yet, run akid snapshot")
		return nil
	}
	if err != nil {
		return err
	}

	changes := catalog.Diff(prev, t)
	for _, c := range changes {
		fmt.Fprintln(cmd.OutOrStdout(), c)
	}
	log.Debug().Str("snapshot", snap.ID).Int("changes", len(changes)).Msg("Compared with snapshot")

	if catalog.HasChanged(changes) {
		return fmt.Errorf("%s: existing ids changed since snapshot %s", source, snap.ID)
	}
	return nil
}
