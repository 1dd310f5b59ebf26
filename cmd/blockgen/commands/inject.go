package commands

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/marmos91/blockgen/internal/cli/output"
	"github.com/marmos91/blockgen/internal/logger"
	"github.com/marmos91/blockgen/pkg/config"
	"github.com/marmos91/blockgen/pkg/datanode"
)

var (
	injectBpid         string
	injectNumBlocks    int64
	injectBlockFile    string
	injectMetaFile     string
	injectStartBlockID int64
	injectGenStamp     int64
	injectStorageDirs  string
	injectDryRun       bool
)

var injectCmd = &cobra.Command{
	Use:   "inject",
	Short: "Inject synthetic blocks into datanode storage",
	Long: `Inject synthetic blocks into the datanode storage directories of a
block pool.

The storage directories are discovered from the cluster configuration
(requires HADOOP_HOME, or hadoop.home in the config file) unless
--storagedirs is given. Each storage directory must carry a version
descriptor for the block pool, and all directories must agree on a
supported layout version.

The requested block count is split evenly across the storage directories
in discovery order; any remainder goes to the first directory. Block and
metadata files are byte-for-byte copies of the given templates, placed in
the two-level hashed subdirectory the storage engine itself would use.

On any failure the run aborts immediately. Blocks already written are left
in place; re-run after fixing the environment.

Examples:
  # Inject one million blocks into pool BP-1234
  blockgen inject --bpid BP-1234 --numblocks 1000000 \
    --block /tmp/template.blk --meta /tmp/template.meta

  # Preview the distribution without writing anything
  blockgen inject --bpid BP-1234 --numblocks 1000000 \
    --block /tmp/template.blk --meta /tmp/template.meta --dry-run

  # Bypass auto-discovery
  blockgen inject --bpid BP-1234 --numblocks 1000 \
    --block /tmp/template.blk --meta /tmp/template.meta \
    --storagedirs /data/dn1,/data/dn2`,
	RunE: runInject,
}

func init() {
	injectCmd.Flags().StringVar(&injectBpid, "bpid", "", "Block pool identifier (required)")
	injectCmd.Flags().Int64Var(&injectNumBlocks, "numblocks", 0, "Total synthetic blocks to create (required)")
	injectCmd.Flags().StringVar(&injectBlockFile, "block", "", "Template block data file (required)")
	injectCmd.Flags().StringVar(&injectMetaFile, "meta", "", "Template block metadata file (required)")
	injectCmd.Flags().Int64Var(&injectStartBlockID, "startblockid", config.DefaultStartBlockID, "First synthetic block ID")
	injectCmd.Flags().Int64Var(&injectGenStamp, "genstamp", config.DefaultGenStamp, "Generation stamp embedded in metadata filenames")
	injectCmd.Flags().StringVar(&injectStorageDirs, "storagedirs", "", "Comma-separated storage directory override (skips auto-discovery)")
	injectCmd.Flags().BoolVar(&injectDryRun, "dry-run", false, "Print the distribution plan without writing anything")

	_ = injectCmd.MarkFlagRequired("bpid")
	_ = injectCmd.MarkFlagRequired("numblocks")
	_ = injectCmd.MarkFlagRequired("block")
	_ = injectCmd.MarkFlagRequired("meta")
}

func runInject(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(GetConfigFile())
	if err != nil {
		return err
	}
	if err := InitLogger(cfg); err != nil {
		return err
	}

	if injectNumBlocks <= 0 {
		return fmt.Errorf("--numblocks must be positive, got %d", injectNumBlocks)
	}

	// Config file supplies the defaults when the flag was not given.
	if !cmd.Flags().Changed("startblockid") {
		injectStartBlockID = cfg.Inject.StartBlockID
	}
	if !cmd.Flags().Changed("genstamp") {
		injectGenStamp = cfg.Inject.GenStamp
	}

	ctx := cmd.Context()

	var dirs []string
	if injectStorageDirs != "" {
		dirs, err = datanode.ResolveStorageDirs(injectStorageDirs)
	} else {
		if cfg.Hadoop.Home == "" {
			return fmt.Errorf("%w: set HADOOP_HOME or hadoop.home in the config file",
				datanode.ErrHadoopHomeNotSet)
		}
		tool := &datanode.GetconfTool{HadoopHome: cfg.Hadoop.Home}
		dirs, err = datanode.DiscoverStorageDirs(ctx, tool, cfg.Hadoop.ConfKey)
	}
	if err != nil {
		return err
	}
	logger.Info("Resolved storage directories", "count", len(dirs))

	layout, err := datanode.ValidateLayout(dirs, injectBpid)
	if err != nil {
		return err
	}
	mask, err := datanode.DirMask(layout)
	if err != nil {
		return err
	}
	logger.Info("Layout validated", "layout_version", layout, "dir_mask", fmt.Sprintf("0x%X", mask))

	plan := datanode.BuildPlan(dirs, injectNumBlocks, injectStartBlockID)

	fmt.Println()
	if err := output.PrintTable(os.Stdout, planTable(plan)); err != nil {
		return err
	}
	fmt.Println()

	if injectDryRun {
		logger.Info("Dry run, nothing written")
		return nil
	}

	m := &datanode.Materializer{
		Mask:          mask,
		GenStamp:      injectGenStamp,
		BlockTemplate: injectBlockFile,
		MetaTemplate:  injectMetaFile,
	}
	if err := m.CheckTemplates(); err != nil {
		return err
	}

	for _, a := range plan {
		if err := m.Materialize(a, injectBpid); err != nil {
			return err
		}
	}

	logger.Info("Injection complete",
		"blocks", injectNumBlocks,
		"storage_dirs", len(dirs),
		"first_id", injectStartBlockID,
		"last_id", injectStartBlockID+injectNumBlocks-1)
	return nil
}

// planTable renders a distribution plan as a table.
type planTable []datanode.Assignment

// Headers implements output.TableRenderer.
func (p planTable) Headers() []string {
	return []string{"STORAGE DIR", "START ID", "END ID", "BLOCKS"}
}

// Rows implements output.TableRenderer.
func (p planTable) Rows() [][]string {
	rows := make([][]string, 0, len(p))
	for _, a := range p {
		rows = append(rows, []string{
			a.StorageDir,
			strconv.FormatInt(a.StartID, 10),
			strconv.FormatInt(a.StartID+a.Count-1, 10),
			strconv.FormatInt(a.Count, 10),
		})
	}
	return rows
}
