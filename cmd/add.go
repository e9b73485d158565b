package cmd

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/modstash/modstash/internal/core/domain"
	"github.com/modstash/modstash/internal/core/services"
	"github.com/modstash/modstash/pkg/ui"
)

var (
	addName        string
	addAuthor      string
	addLink        string
	addDescription string
	addCategory    string
	addPreview     string
	addNoCopy      bool
)

var addCmd = &cobra.Command{
	Use:   "add [file|folder...]",
	Short: "Ingest a mod into the library",
	Long: `Ingest a mod into the vault from local files.

Accepted shapes:
  - a single packed-asset file (.vpk)
  - a single compressed archive (.zip, .rar, .7z); only .zip is unwrapped,
    other archives are stored whole for manual handling
  - a folder (or several files) containing one or more .vpk files

The result is a self-contained mod directory with the payload under
files/, a preview image, and a metadata.json document.

Examples:
  modstash add SkinPack.vpk --name "Red Armor" --category skins
  modstash add bundle.zip --name "Map Pack" --author someone
  modstash add ~/Downloads/my-mod/ --preview shot.png`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAdd,
}

func init() {
	addCmd.Flags().StringVarP(&addName, "name", "n", "", "Mod display name (defaults to the source file name)")
	addCmd.Flags().StringVarP(&addAuthor, "author", "a", "", "Mod author")
	addCmd.Flags().StringVarP(&addLink, "link", "l", "", "Source link")
	addCmd.Flags().StringVarP(&addDescription, "desc", "d", "", "Short description")
	addCmd.Flags().StringVarP(&addCategory, "category", "c", "", "Category ("+domain.CategoriesString()+")")
	addCmd.Flags().StringVarP(&addPreview, "preview", "p", "", "Path to a preview image")
	addCmd.Flags().BoolVar(&addNoCopy, "no-copy", false, "Do not copy the mod path to the clipboard")
}

func runAdd(cmd *cobra.Command, args []string) error {
	ctx := getContext()

	// 1. Flatten the dropped paths into entries
	entries, err := entriesFromPaths(args)
	if err != nil {
		return err
	}

	// 2. Classify
	source := services.Classify(entries)
	if _, ok := source.(domain.Unrecognized); ok {
		fmt.Println(ui.FormatError("Nothing usable in the drop"))
		fmt.Println(ui.FormatInfo("Accepted: a .vpk file, a .zip/.rar/.7z archive, or a folder containing .vpk files"))
		return fmt.Errorf("unrecognized source")
	}

	// 3. Resolve metadata
	category, err := resolveCategory(addCategory)
	if err != nil {
		return err
	}

	meta := domain.DraftMetadata{
		Name:        addName,
		Author:      addAuthor,
		Link:        addLink,
		Description: addDescription,
	}
	if meta.Name == "" {
		meta.Name = defaultName(source, args[0])
	}
	if addPreview != "" {
		image, err := os.ReadFile(addPreview)
		if err != nil {
			return fmt.Errorf("failed to read preview image: %w", err)
		}
		meta.Image = image
		meta.ImageName = filepath.Base(addPreview)
	}

	fmt.Println(ui.FormatPackage(fmt.Sprintf("Staging %s...", ui.StyleBold.Render(meta.Name))))

	// 4. Stage
	resp, err := stageService.Execute(ctx, services.StageRequest{
		Source:   source,
		Meta:     meta,
		Category: category,
	})
	if err != nil {
		fmt.Println(ui.FormatError("Staging failed"))
		return err
	}

	for _, warn := range resp.Warnings {
		fmt.Println(ui.FormatWarning(warn))
	}
	if folder, ok := source.(domain.FolderPackedAssets); ok && len(folder.Entries) > 1 {
		fmt.Println(ui.FormatWarning(fmt.Sprintf("Folder held %d .vpk files; only the first alphabetically was staged", len(folder.Entries))))
	}

	// 5. Register
	rec := domain.ModRecord{
		Meta: resp.Mod.Meta,
		Dir:  resp.Mod.RootDir,
	}
	if resp.Mod.PayloadPath != "" {
		rec.Payload = filepath.Base(resp.Mod.PayloadPath)
	}
	if err := modRegistry.Save(ctx, rec); err != nil {
		fmt.Println(ui.FormatWarning("Mod staged but not registered: " + err.Error()))
	}

	fmt.Println(ui.FormatSuccess("Mod added to the library"))
	fmt.Println(ui.RenderKeyValue("ID", resp.Mod.ID))
	fmt.Println(ui.RenderKeyValue("Location", resp.Mod.RootDir))

	// 6. Clipboard convenience
	if appConfig.CopyPathOnAdd && !addNoCopy {
		if err := clipboard.WriteAll(resp.Mod.RootDir); err == nil {
			fmt.Println(ui.FormatMuted("Mod path copied to clipboard"))
		}
	}

	return nil
}

// entriesFromPaths flattens files and folders into dropped entries. A
// folder contributes every file beneath it with relative paths rooted at
// the folder name; a plain file contributes a single entry with no
// relative path. Content stays on disk and is read lazily.
func entriesFromPaths(paths []string) ([]domain.DroppedEntry, error) {
	var entries []domain.DroppedEntry

	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return nil, err
		}
		info, err := os.Stat(abs)
		if err != nil {
			return nil, fmt.Errorf("cannot access %s: %w", p, err)
		}

		if !info.IsDir() {
			entries = append(entries, domain.DroppedEntry{
				Name: filepath.Base(abs),
				Path: abs,
			})
			continue
		}

		parent := filepath.Dir(abs)
		err = filepath.WalkDir(abs, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			rel, err := filepath.Rel(parent, path)
			if err != nil {
				return err
			}
			entries = append(entries, domain.DroppedEntry{
				Name:         d.Name(),
				RelativePath: filepath.ToSlash(rel),
				Path:         path,
			})
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("failed to walk %s: %w", p, err)
		}
	}

	return entries, nil
}

// defaultName derives a display name from the classified source when the
// user supplied none.
func defaultName(source domain.Source, firstArg string) string {
	switch src := source.(type) {
	case domain.SinglePackedAsset:
		return domain.NameFromFilename(src.Entry.Name)
	case domain.SingleArchive:
		return domain.NameFromFilename(src.Entry.Name)
	case domain.FolderPackedAssets:
		if src.FolderName != "" {
			return domain.NameFromFilename(src.FolderName)
		}
		return domain.NameFromFilename(src.Entries[0].Name)
	}
	return domain.NameFromFilename(filepath.Base(firstArg))
}

// resolveCategory validates the flag value, falling back to the config
// default when the flag is unset.
func resolveCategory(flag string) (domain.Category, error) {
	if flag == "" {
		flag = appConfig.DefaultCategory
	}
	return domain.ParseCategory(flag)
}
