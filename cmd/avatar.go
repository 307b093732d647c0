package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/kernel/kit/pkg/avatar"
	"github.com/kernel/kit/pkg/util"
	"github.com/pkg/browser"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// AvatarResolver resolves an identifier to an avatar URL.
type AvatarResolver interface {
	ResolveWith(ctx context.Context, identifier string, opts avatar.Options) (avatar.Result, error)
}

// LogoFinder looks up company logos by domain.
type LogoFinder interface {
	Logo(ctx context.Context, domain string) (string, bool, error)
}

// Opener shows a URL or a generated page to the user.
type Opener interface {
	OpenURL(url string) error
	OpenReader(r io.Reader) error
}

type systemBrowser struct{}

func (systemBrowser) OpenURL(url string) error     { return browser.OpenURL(url) }
func (systemBrowser) OpenReader(r io.Reader) error { return browser.OpenReader(r) }

// AvatarCmd handles avatar and logo lookups.
type AvatarCmd struct {
	resolver AvatarResolver
	logos    LogoFinder
	opener   Opener
}

// AvatarInput holds input for resolving an avatar.
type AvatarInput struct {
	Identifier string
	Options    avatar.Options
	Open       bool
	Output     string
}

// LogoInput holds input for a logo lookup.
type LogoInput struct {
	Domain string
	Output string
}

// Resolve runs the avatar fallback chain for one identifier.
func (c AvatarCmd) Resolve(ctx context.Context, in AvatarInput) error {
	if err := validateOutput(in.Output); err != nil {
		return err
	}
	if strings.TrimSpace(in.Identifier) == "" {
		return fmt.Errorf("identifier must not be empty")
	}

	res, err := c.resolver.ResolveWith(ctx, in.Identifier, in.Options)
	if err != nil {
		return err
	}

	if in.Output == "json" {
		return util.PrintPrettyJSON(res)
	}

	rows := pterm.TableData{{"Property", "Value"}}
	rows = append(rows, []string{"Identifier", in.Identifier})
	rows = append(rows, []string{"Source", string(res.Source)})
	rows = append(rows, []string{"URL", truncate(res.URL, 72)})
	if res.Source == avatar.SourceBoring {
		palette := in.Options.ColorPalette
		if len(palette) == 0 {
			palette = avatar.DefaultPalette
		}
		rows = append(rows, []string{"Palette", util.JoinOrDash(palette...)})
	}
	PrintTableNoPad(rows, true)
	if strings.HasPrefix(res.URL, "data:") {
		pterm.Info.Println("Generated avatar; use -o json for the full data URL")
	}

	if in.Open {
		return c.open(res.URL)
	}
	return nil
}

func (c AvatarCmd) open(url string) error {
	if c.opener == nil {
		return fmt.Errorf("no browser available")
	}
	// Browsers refuse top-level navigation to data URLs, so wrap them in a page.
	if strings.HasPrefix(url, "data:") {
		page := fmt.Sprintf(`<!doctype html><title>avatar</title><img src="%s" alt="avatar">`, url)
		return c.opener.OpenReader(strings.NewReader(page))
	}
	return c.opener.OpenURL(url)
}

// Logo reports the company logo for a domain.
func (c AvatarCmd) Logo(ctx context.Context, in LogoInput) error {
	if err := validateOutput(in.Output); err != nil {
		return err
	}
	domain := strings.ToLower(strings.TrimSpace(in.Domain))
	if d, ok := avatar.MailDomain(domain); ok {
		domain = d
	}
	if domain == "" {
		return fmt.Errorf("domain must not be empty")
	}

	url, found, err := c.logos.Logo(ctx, domain)
	if err != nil {
		return fmt.Errorf("logo lookup failed: %w", err)
	}

	if in.Output == "json" {
		return util.PrintPrettyJSON(map[string]any{"domain": domain, "found": found, "url": url})
	}
	if !found {
		pterm.Warning.Printf("No logo found for %s\n", domain)
		return nil
	}
	if avatar.IsMailHost(domain) {
		pterm.Info.Printf("%s is a public mail host; avatars never use its logo\n", domain)
	}
	pterm.Success.Printf("Logo for %s\n", domain)
	pterm.Println(url)
	return nil
}

var avatarCmd = &cobra.Command{
	Use:   "avatar <email>",
	Short: "Resolve the avatar for an email address or identifier",
	Long: `Resolve an avatar by trying, in order: Gravatar, the company logo for the
email's domain (skipped for public mail hosts), a generated geometric avatar,
an identicon, and finally the configured default image.`,
	Args: cobra.ExactArgs(1),
	RunE: runAvatar,
}

var logoCmd = &cobra.Command{
	Use:   "logo <domain>",
	Short: "Look up the company logo for a domain",
	Args:  cobra.ExactArgs(1),
	RunE:  runLogo,
}

func init() {
	rootCmd.AddCommand(avatarCmd)
	rootCmd.AddCommand(logoCmd)

	avatarCmd.Flags().Bool("open", false, "Open the resolved avatar in the browser")
	avatarCmd.Flags().Bool("no-boring", false, "Do not generate a geometric avatar")
	avatarCmd.Flags().Bool("jdenticon", false, "Generate an identicon when no image is found")
	avatarCmd.Flags().String("default", "", "Fallback image URL (overrides KIT_AVATAR_DEFAULT)")
	avatarCmd.Flags().StringSlice("palette", nil, "Colors for generated avatars, e.g. --palette '#000000,#ffffff'")
	addOutputFlag(avatarCmd.Flags())

	addOutputFlag(logoCmd.Flags())
}

func newAvatarResolver(cmd *cobra.Command, opts avatar.Options) *avatar.Resolver {
	return avatar.New(opts,
		avatar.WithHTTPClient(getHTTPClient(cmd)),
		avatar.WithLogger(getLogger(cmd)),
	)
}

func avatarOptions(cmd *cobra.Command) avatar.Options {
	cfg := getConfig(cmd)
	opts := avatar.Options{
		DefaultTo:        cfg.AvatarDefault,
		UseBoringAvatars: cfg.UseBoringAvatars,
		UseJdenticon:     cfg.UseJdenticon,
		ColorPalette:     cfg.ColorPalette,
	}
	if v, _ := cmd.Flags().GetBool("no-boring"); v {
		opts.UseBoringAvatars = false
	}
	if v, _ := cmd.Flags().GetBool("jdenticon"); v {
		opts.UseJdenticon = true
	}
	if v, _ := cmd.Flags().GetString("default"); v != "" {
		opts.DefaultTo = v
	}
	if v, _ := cmd.Flags().GetStringSlice("palette"); len(v) > 0 {
		opts.ColorPalette = v
	}
	return opts
}

func runAvatar(cmd *cobra.Command, args []string) error {
	opts := avatarOptions(cmd)
	open, _ := cmd.Flags().GetBool("open")
	output, _ := cmd.Flags().GetString("output")

	c := AvatarCmd{resolver: newAvatarResolver(cmd, opts), opener: systemBrowser{}}
	return c.Resolve(cmd.Context(), AvatarInput{
		Identifier: args[0],
		Options:    opts,
		Open:       open,
		Output:     output,
	})
}

func runLogo(cmd *cobra.Command, args []string) error {
	output, _ := cmd.Flags().GetString("output")

	c := AvatarCmd{logos: newAvatarResolver(cmd, avatar.DefaultOptions())}
	return c.Logo(cmd.Context(), LogoInput{Domain: args[0], Output: output})
}
