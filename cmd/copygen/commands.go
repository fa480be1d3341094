package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"adcraft/internal/copywriter"
	"adcraft/internal/domain"
	"adcraft/internal/generation"
	"adcraft/internal/infra"
	"adcraft/internal/storage"
	"adcraft/pkg/zip"
)

type generator interface {
	Generate(ctx context.Context, brief domain.Brief) (*domain.GenerationResult, error)
}

type serviceFactory func() (generator, error)

// defaultServiceFactory builds the same service the API serves. Logs go to
// stderr so stdout stays machine readable.
func defaultServiceFactory() (generator, error) {
	cfg, err := infra.LoadConfig()
	if err != nil {
		return nil, err
	}
	logger := infra.NewLoggerWith(cfg.AppEnv, infra.LogOptions{Out: os.Stderr, Level: zerolog.WarnLevel, Console: true})
	svc, _ := generation.NewServiceFromConfig(cfg, nil, &logger)
	return svc, nil
}

type briefFlags struct {
	brief   domain.Brief
	noImage bool
	asJSON  bool
}

type exportFlags struct {
	outDir  string
	zipPath string
}

func (f *briefFlags) bind(cmd *cobra.Command, withImages bool) {
	fs := cmd.Flags()
	fs.StringVar(&f.brief.Product, "product", "", "product name (required)")
	fs.StringVar(&f.brief.Category, "category", "", "product category")
	fs.StringVar(&f.brief.KeyBenefit, "benefit", "", "key benefit")
	fs.StringVar(&f.brief.Audience, "audience", "", "target audience")
	fs.StringVar(&f.brief.Tone, "tone", "", "friendly, playful, luxury, bold or calm")
	fs.StringVar(&f.brief.Platform, "platform", "", "publishing platform")
	fs.BoolVar(&f.asJSON, "json", false, "print JSON instead of text")
	if withImages {
		fs.StringVar(&f.brief.ImageStyle, "image-style", "", "photo style hint")
		fs.StringVar(&f.brief.ColorHint, "color", "", "colour hint")
		fs.StringVar(&f.brief.ImageQuery, "image-query", "", "explicit stock-photo query")
		fs.BoolVar(&f.noImage, "no-image", false, "skip image lookup")
	}
	_ = cmd.MarkFlagRequired("product")
}

func (f *briefFlags) resolved() domain.Brief {
	b := f.brief
	if f.noImage {
		include := false
		b.IncludeImage = &include
	}
	b.Normalize()
	return b
}

func newRootCmd(factory serviceFactory) *cobra.Command {
	root := &cobra.Command{
		Use:          "copygen",
		Short:        "Generate marketing copy from a product brief",
		SilenceUsage: true,
	}
	root.AddCommand(newGenerateCmd(factory), newComposeCmd())
	return root
}

func newGenerateCmd(factory serviceFactory) *cobra.Command {
	flags := &briefFlags{}
	export := &exportFlags{}
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Run the provider chain, quality gate and image lookup",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			brief := flags.resolved()
			if err := brief.Validate(); err != nil {
				return err
			}
			svc, err := factory()
			if err != nil {
				return fmt.Errorf("configure: %w", err)
			}
			res, err := svc.Generate(cmd.Context(), brief)
			if err != nil {
				return err
			}
			if err := export.write(cmd, brief, res); err != nil {
				return err
			}
			if flags.asJSON {
				return writeJSON(cmd.OutOrStdout(), res)
			}
			writeResult(cmd.OutOrStdout(), res)
			return nil
		},
	}
	flags.bind(cmd, true)
	cmd.Flags().StringVar(&export.outDir, "out", "", "write the campaign kit files under this directory")
	cmd.Flags().StringVar(&export.zipPath, "zip", "", "write the campaign kit as a zip archive to this path")
	return cmd
}

func (e *exportFlags) write(cmd *cobra.Command, brief domain.Brief, res *domain.GenerationResult) error {
	if e.outDir == "" && e.zipPath == "" {
		return nil
	}
	assets, err := generation.BuildKit(res)
	if err != nil {
		return err
	}
	if e.outDir != "" {
		store, err := storage.NewFileStore(e.outDir)
		if err != nil {
			return err
		}
		prefix := strings.TrimSuffix(generation.KitFilename(brief.Product), ".zip")
		keys, err := store.WriteAssets(cmd.Context(), prefix, assets)
		if err != nil {
			return err
		}
		for _, key := range keys {
			fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s\n", store.Path(key))
		}
	}
	if e.zipPath != "" {
		archive, err := zip.ArchiveAssets(assets)
		if err != nil {
			return err
		}
		if err := os.WriteFile(e.zipPath, archive, 0o644); err != nil {
			return fmt.Errorf("write zip: %w", err)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s\n", e.zipPath)
	}
	return nil
}

func newComposeCmd() *cobra.Command {
	flags := &briefFlags{}
	cmd := &cobra.Command{
		Use:   "compose",
		Short: "Print the deterministic copy without contacting any provider",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			brief := flags.resolved()
			if err := brief.Validate(); err != nil {
				return err
			}
			c := copywriter.Compose(brief)
			if flags.asJSON {
				return writeJSON(cmd.OutOrStdout(), c)
			}
			writeCopy(cmd.OutOrStdout(), c)
			return nil
		},
	}
	flags.bind(cmd, false)
	return cmd
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeCopy(w io.Writer, c domain.Copy) {
	_, _ = io.WriteString(w, generation.CopySheet(c))
}

func writeResult(w io.Writer, res *domain.GenerationResult) {
	fmt.Fprintf(w, "Provider: %s", res.Provider)
	if res.Demo {
		fmt.Fprint(w, " (demo)")
	}
	fmt.Fprintln(w)
	writeCopy(w, res.Copy)
	for _, u := range res.Images {
		fmt.Fprintf(w, "Image: %s\n", u)
	}
	if res.ImageDataURL != "" {
		fmt.Fprintf(w, "Image: placeholder (%d bytes)\n", len(res.ImageDataURL))
	}
	if res.Message != "" {
		fmt.Fprintf(w, "Note: %s\n", res.Message)
	}
}
