package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/padraicbc/runlog/models"
	"github.com/padraicbc/runlog/store"
)

// runFile is the document layout for both import and export:
//
//	runs:
//	  - rdate: "2020-07-10"
//	    timeofday: am
//	    ...
type runFile struct {
	Runs []map[string]any `yaml:"runs"`
}

type runRecord struct {
	RunID     int64          `yaml:"runid"`
	RDate     models.Date    `yaml:"rdate"`
	TimeOfDay string         `yaml:"timeofday"`
	Distance  string         `yaml:"distance"`
	Units     string         `yaml:"units"`
	Elapsed   models.Elapsed `yaml:"elapsed"`
	Effort    string         `yaml:"effort,omitempty"`
	Comment   string         `yaml:"comment,omitempty"`
}

func newYAMLCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "yaml <file>",
		Short: "Import runs from a YAML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			e, err := setup(ctx)
			if err != nil {
				return err
			}
			defer e.close()

			im := newImporter(store.New(e.db), e.log)
			if err := importYAML(ctx, f, args[0], im); err != nil {
				return err
			}
			im.done("yaml import")
			return nil
		},
	}
}

func newExportCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export every run as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			e, err := setup(ctx)
			if err != nil {
				return err
			}
			defer e.close()

			runs, err := store.New(e.db).List(ctx)
			if err != nil {
				return err
			}

			var w io.Writer = cmd.OutOrStdout()
			if out != "" && out != "-" {
				f, err := os.Create(out)
				if err != nil {
					return err
				}
				defer f.Close()
				w = f
			}
			if err := exportYAML(w, runs); err != nil {
				return err
			}
			e.log.Info("export complete", zap.Int("runs", len(runs)), zap.String("output", out))
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "-", "file to write, - for stdout")
	return cmd
}

func importYAML(ctx context.Context, r io.Reader, name string, im *importer) error {
	var doc runFile
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("decode %s: %w", name, err)
	}

	for i, rec := range doc.Runs {
		if rec == nil {
			rec = map[string]any{}
		}
		if err := im.add(ctx, fmt.Sprintf("%s[%d]", name, i), rec); err != nil {
			return err
		}
	}
	return nil
}

func exportYAML(w io.Writer, runs []models.Run) error {
	doc := struct {
		Runs []runRecord `yaml:"runs"`
	}{Runs: make([]runRecord, 0, len(runs))}

	for _, r := range runs {
		doc.Runs = append(doc.Runs, runRecord{
			RunID:     r.RunID,
			RDate:     r.RDate,
			TimeOfDay: r.TimeOfDay,
			Distance:  r.Distance.String(),
			Units:     r.Units,
			Elapsed:   r.Elapsed,
			Effort:    r.Effort,
			Comment:   r.Comment,
		})
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}
