package main

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/oba-ldap/aci/internal/aci"
	"github.com/oba-ldap/aci/internal/output"
)

// assembled is one draft file turned into ACI text.
type assembled struct {
	File string `json:"file" yaml:"file"`
	ACI  string `json:"aci" yaml:"aci"`
}

type assembledList []assembled

func (l assembledList) Headers() []string {
	return []string{"FILE", "ACI"}
}

func (l assembledList) Rows() [][]string {
	rows := make([][]string, 0, len(l))
	for _, r := range l {
		rows = append(rows, []string{r.File, r.ACI})
	}
	return rows
}

func newAssembleCmd(a *app) *cobra.Command {
	var validate, watch bool

	cmd := &cobra.Command{
		Use:   "assemble <draft.yaml|glob>...",
		Short: "Build ACI text from draft files",
		Long: `Build ACI text from YAML draft files. Arguments may be glob patterns;
** matches any number of directories.

Validation problems are reported as warnings. With --validate they fail the
command instead. With --watch the single draft is reassembled every time it
is saved, until interrupted.

Examples:
  acitool assemble helpdesk.yaml
  acitool assemble --validate 'acis/**/*.yaml'
  acitool assemble --watch helpdesk.yaml`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if watch {
				if len(args) != 1 {
					return errors.New("--watch takes exactly one draft file")
				}
				ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
				defer stop()
				return a.watchDraft(ctx, args[0])
			}
			return a.assembleFiles(args, validate)
		},
	}

	cmd.Flags().BoolVar(&validate, "validate", false, "fail when a draft does not validate")
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "reassemble the draft whenever it changes")
	return cmd
}

func (a *app) assembleFiles(patterns []string, strict bool) error {
	var files []aci.DraftFile
	for _, pattern := range patterns {
		matched, err := aci.LoadDraftGlob(pattern)
		if err != nil {
			return err
		}
		files = append(files, matched...)
	}

	catalog, err := a.catalog()
	if err != nil {
		return err
	}

	var (
		results assembledList
		invalid int
	)
	for _, f := range files {
		if errs := aci.ValidateDraft(f.Draft, catalog); len(errs) > 0 {
			invalid++
			for _, e := range errs {
				fmt.Fprintf(a.stderr, "%s: %v\n", f.Path, e)
			}
			if strict {
				continue
			}
		}

		text, err := aci.Assemble(f.Draft)
		if err != nil {
			return fmt.Errorf("%s: %w", f.Path, err)
		}
		a.logger.Debug("draft assembled", "file", f.Path, "name", f.Draft.Name)
		results = append(results, assembled{File: f.Path, ACI: text})
	}

	if strict && invalid > 0 {
		return a.fail("%d of %d drafts failed validation", invalid, len(files))
	}

	if len(results) == 1 && a.printer.Format() == output.FormatTable {
		return a.printer.Text("aci", results[0].ACI)
	}
	return a.printer.Print(results)
}

func (a *app) watchDraft(ctx context.Context, path string) error {
	watcher, err := aci.NewWatcher(&aci.WatcherConfig{
		FilePath: path,
		Logger:   a.logger,
		Debounce: a.cfg.Watch.Debounce,
	})
	if err != nil {
		return err
	}
	if err := watcher.Start(ctx); err != nil {
		return err
	}
	defer watcher.Stop()

	fmt.Fprintf(a.stderr, "Watching %s (Ctrl+C to stop)...\n", path)

	for {
		select {
		case <-ctx.Done():
			return nil
		case res, ok := <-watcher.Results():
			if !ok {
				return nil
			}
			if res.Err != nil {
				a.printer.Error(fmt.Sprintf("%s: %v", res.Path, res.Err))
				continue
			}
			if err := a.printer.Text("aci", res.ACI); err != nil {
				return err
			}
		}
	}
}
