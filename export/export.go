// Package export walks a site snapshot store and writes the static HTML
// mirror: one directory per page with an index.html and the page's
// attachment payloads. All rendering is delegated to the render package,
// this package owns path layout and file writing only.
package export

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/maruel/natural"
	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"sitemirror/config"
	"sitemirror/render"
	"sitemirror/site"
	"sitemirror/state"
)

const indexFile = "index.html"

// Run is the export subcommand action: parse the snapshot, build the store
// and write the mirror to the destination directory.
func Run(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)

	source := cmd.Args().Get(0)
	if source == "" {
		return errors.New("no snapshot to export")
	}
	dest := cmd.Args().Get(1)
	if dest == "" {
		dest = "."
	}
	if cmd.Args().Len() > 2 {
		env.Log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[2:]))
	}

	if fi, err := os.Stat(dest); err == nil && fi.IsDir() && !cmd.Bool("overwrite") {
		if names, err := os.ReadDir(dest); err == nil && len(names) > 0 {
			return fmt.Errorf("destination %q is not empty (use --overwrite)", dest)
		}
	}

	f, err := os.Open(source)
	if err != nil {
		return fmt.Errorf("unable to open snapshot: %w", err)
	}
	defer f.Close()

	entries, err := site.ParseSnapshot(f, env.Log)
	if err != nil {
		return fmt.Errorf("unable to parse snapshot %q: %w", source, err)
	}
	env.Log.Info("Snapshot parsed", zap.String("source", source), zap.Int("entries", len(entries)))

	return Export(ctx, site.NewMemStore(entries), dest, &env.Cfg.Export, env.Log)
}

// Export renders every page entry in the store and writes the mirror tree
// under dest. Pages are processed in natural path order so repeated exports
// of the same snapshot produce identical logs and identical trees. A failing
// page is logged and skipped, the walk continues and the collected errors
// are returned at the end.
func Export(ctx context.Context, store *site.MemStore, dest string, cfg *config.ExportConfig, log *zap.Logger) error {
	cssHref := ""
	var errs error
	if cfg.Stylesheet != "" {
		name, err := copyStylesheet(cfg.Stylesheet, dest)
		if err != nil {
			log.Warn("Unable to copy stylesheet, pages will not reference it", zap.Error(err))
			errs = multierr.Append(errs, err)
		} else {
			cssHref = name
		}
	}

	type job struct {
		entry *site.Entry
		dir   string
	}
	var jobs []job
	for _, entry := range store.Entries() {
		if !entry.Kind.IsPage() {
			continue
		}
		jobs = append(jobs, job{entry, PagePath(entry, store)})
	}
	sort.Slice(jobs, func(i, j int) bool { return natural.Less(jobs[i].dir, jobs[j].dir) })

	for _, j := range jobs {
		if err := ctx.Err(); err != nil {
			return multierr.Append(errs, err)
		}
		if err := exportPage(j.entry, j.dir, store, dest, cfg, cssHref, log); err != nil {
			log.Error("Unable to export page", zap.String("page", j.dir), zap.Error(err))
			errs = multierr.Append(errs, fmt.Errorf("page %q: %w", j.dir, err))
			continue
		}
		log.Info("Exported page", zap.String("page", j.dir))
	}
	return errs
}

func exportPage(entry *site.Entry, dir string, store *site.MemStore, dest string, cfg *config.ExportConfig, cssHref string, log *zap.Logger) error {
	pr, err := render.NewPageRenderer(entry, store, render.NewElementFactory(), render.WithLogger(log))
	if err != nil {
		return err
	}

	pageDir := filepath.Join(dest, filepath.FromSlash(dir))
	if err := os.MkdirAll(pageDir, 0755); err != nil {
		return fmt.Errorf("unable to create page directory: %w", err)
	}

	title := entry.Title
	if cfg.SiteTitle != "" {
		title = entry.Title + " - " + cfg.SiteTitle
	}
	// the stylesheet sits at the site root, each page references it through
	// as many up-directory segments as its path has
	href := cssHref
	if href != "" {
		href = strings.Repeat("../", strings.Count(dir, "/")+1) + cssHref
	}

	doc := render.PageDocument(pr, title, href)
	doc.Indent(2)

	out, err := os.Create(filepath.Join(pageDir, indexFile))
	if err != nil {
		return fmt.Errorf("unable to create index file: %w", err)
	}
	defer out.Close()
	if _, err := doc.WriteTo(out); err != nil {
		return fmt.Errorf("unable to write index file: %w", err)
	}

	for _, attachment := range pr.Attachments() {
		if attachment.Content == "" {
			log.Debug("Attachment has no payload, skipping", zap.String("id", attachment.ID), zap.String("title", attachment.Title))
			continue
		}
		name := filepath.Join(pageDir, cleanFileName(attachment.Title))
		if err := os.WriteFile(name, []byte(attachment.Content), 0644); err != nil {
			return fmt.Errorf("unable to write attachment %q: %w", attachment.Title, err)
		}
	}
	return nil
}

func copyStylesheet(src, dest string) (string, error) {
	data, err := os.ReadFile(src)
	if err != nil {
		return "", fmt.Errorf("unable to read stylesheet: %w", err)
	}
	name := cleanFileName(filepath.Base(src))
	if err := os.MkdirAll(dest, 0755); err != nil {
		return "", fmt.Errorf("unable to create destination: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dest, name), data, 0644); err != nil {
		return "", fmt.Errorf("unable to write stylesheet: %w", err)
	}
	return name, nil
}
