package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/kernel/kit/pkg/convert"
	"github.com/kernel/kit/pkg/util"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// ImageService fetches images and derives colors and data URLs from them.
type ImageService interface {
	AccentColor(ctx context.Context, src string, dark bool) (string, bool, error)
	ToDataURL(ctx context.Context, src, format string) (string, error)
}

// ImagesCmd handles image commands.
type ImagesCmd struct {
	images ImageService
}

// ColorInput holds input for the color command.
type ColorInput struct {
	Src    string
	Light  bool
	Output string
}

// DataURLInput holds input for the dataurl command.
type DataURLInput struct {
	Src    string
	Format string
}

// Color prints the accent color of an image.
func (c ImagesCmd) Color(ctx context.Context, in ColorInput) error {
	if err := validateOutput(in.Output); err != nil {
		return err
	}
	dark := !in.Light
	hex, ok, err := c.images.AccentColor(ctx, in.Src, dark)
	if err != nil {
		return err
	}

	if in.Output == "json" {
		out := map[string]any{"found": ok, "dark": dark}
		if ok {
			out["hex"] = "#" + hex
		}
		return util.PrintPrettyJSON(out)
	}
	if !ok {
		shade := "dark"
		if in.Light {
			shade = "light"
		}
		pterm.Warning.Printf("No %s color found in image\n", shade)
		return nil
	}
	pterm.Println(swatch(hex) + " #" + hex)
	return nil
}

// swatch renders a block of the given color.
func swatch(hex string) string {
	return lipgloss.NewStyle().
		Background(lipgloss.Color("#" + hex)).
		Render("      ")
}

func dataURLFormat(f string) (string, error) {
	switch strings.ToLower(f) {
	case "", "png", convert.FormatPNG:
		return convert.FormatPNG, nil
	case "jpg", "jpeg", convert.FormatJPEG:
		return convert.FormatJPEG, nil
	}
	return "", fmt.Errorf("unsupported format %q: use png or jpeg", f)
}

// DataURL prints an image re-encoded as a data URL.
func (c ImagesCmd) DataURL(ctx context.Context, in DataURLInput) error {
	format, err := dataURLFormat(in.Format)
	if err != nil {
		return err
	}
	url, err := c.images.ToDataURL(ctx, in.Src, format)
	if err != nil {
		return err
	}
	pterm.Println(url)
	return nil
}

var colorCmd = &cobra.Command{
	Use:   "color <image-url>",
	Short: "Find the accent color of an image",
	Long:  "Find the most prominent dark (or, with --light, light) color of an image given as a URL or data URL.",
	Args:  cobra.ExactArgs(1),
	RunE:  runColor,
}

var dataURLCmd = &cobra.Command{
	Use:   "dataurl <image-url>",
	Short: "Re-encode an image as a data URL",
	Args:  cobra.ExactArgs(1),
	RunE:  runDataURL,
}

func init() {
	rootCmd.AddCommand(colorCmd)
	rootCmd.AddCommand(dataURLCmd)

	colorCmd.Flags().Bool("light", false, "Pick a light color instead of a dark one")
	addOutputFlag(colorCmd.Flags())

	dataURLCmd.Flags().String("format", "png", "Output format: png or jpeg")
}

func newImages(cmd *cobra.Command) *convert.Images {
	return convert.NewImages(
		convert.WithHTTPClient(getHTTPClient(cmd)),
		convert.WithLogger(getLogger(cmd)),
	)
}

func runColor(cmd *cobra.Command, args []string) error {
	light, _ := cmd.Flags().GetBool("light")
	output, _ := cmd.Flags().GetString("output")

	c := ImagesCmd{images: newImages(cmd)}
	return c.Color(cmd.Context(), ColorInput{Src: args[0], Light: light, Output: output})
}

func runDataURL(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")

	c := ImagesCmd{images: newImages(cmd)}
	return c.DataURL(cmd.Context(), DataURLInput{Src: args[0], Format: format})
}
