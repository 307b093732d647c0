package avatar

import (
	"context"
	"fmt"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/kernel/kit/pkg/convert"
)

const (
	DefaultGravatarBaseURL = "https://www.gravatar.com/avatar/"
	DefaultLogoBaseURL     = "https://logo.clearbit.com/"
	DefaultAvatarPath      = "/img/avatar.png"
	vercelBaseURL          = "https://avatar.vercel.sh/"
)

// DefaultPalette is the palette used when Options.ColorPalette is empty.
var DefaultPalette = []string{"#92A1C6", "#146A7C", "#F0AB3D", "#C271B4", "#C20D90"}

// Source identifies the tier that produced a Result.
type Source string

const (
	SourceGravatar  Source = "gravatar"
	SourceLogo      Source = "logo"
	SourceBoring    Source = "boring"
	SourceIdenticon Source = "identicon"
	SourceDefault   Source = "default"
)

// Result is a resolved avatar. URL is a remote URL, a data URL, or the
// configured default.
type Result struct {
	URL    string `json:"url"`
	Source Source `json:"source"`
}

// Options controls the rendering and default tiers.
type Options struct {
	// DefaultTo is returned as-is when every other tier passes. An empty
	// value is indistinguishable from unset and means DefaultAvatarPath.
	DefaultTo        string
	UseBoringAvatars bool
	UseJdenticon     bool
	ColorPalette     []string
}

// DefaultOptions returns BoringAvatars enabled, identicons disabled, the
// default palette, and DefaultAvatarPath as the terminal default.
func DefaultOptions() Options {
	return Options{
		DefaultTo:        DefaultAvatarPath,
		UseBoringAvatars: true,
		ColorPalette:     append([]string(nil), DefaultPalette...),
	}
}

// Generator renders an SVG image from a seed.
type Generator interface {
	Generate(seed string, palette []string) ([]byte, error)
}

// Rasterizer converts an SVG document to PNG bytes.
type Rasterizer interface {
	Rasterize(svg []byte) ([]byte, error)
}

// HTTPDoer is the subset of *http.Client the resolver needs.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Resolver runs the fallback chain. It holds no per-call state and is safe
// for concurrent use.
type Resolver struct {
	opts         Options
	http         HTTPDoer
	boring       Generator
	identicon    Generator
	rasterizer   Rasterizer
	gravatarBase string
	logoBase     string
	log          zerolog.Logger
}

// Option configures a Resolver.
type Option func(*Resolver)

func WithHTTPClient(c HTTPDoer) Option {
	return func(r *Resolver) { r.http = c }
}

func WithBoringGenerator(g Generator) Option {
	return func(r *Resolver) { r.boring = g }
}

func WithIdenticonGenerator(g Generator) Option {
	return func(r *Resolver) { r.identicon = g }
}

func WithRasterizer(z Rasterizer) Option {
	return func(r *Resolver) { r.rasterizer = z }
}

// WithBaseURLs points the Gravatar and logo lookups elsewhere. Both must end
// with a slash.
func WithBaseURLs(gravatar, logo string) Option {
	return func(r *Resolver) {
		r.gravatarBase = gravatar
		r.logoBase = logo
	}
}

func WithLogger(l zerolog.Logger) Option {
	return func(r *Resolver) { r.log = l }
}

// New returns a Resolver with the given defaults. The built-in generators and
// rasterizer are used unless replaced.
func New(opts Options, options ...Option) *Resolver {
	r := &Resolver{
		opts:         opts,
		http:         http.DefaultClient,
		boring:       Geometric{},
		identicon:    Identicon{},
		rasterizer:   PNGRasterizer{},
		gravatarBase: DefaultGravatarBaseURL,
		logoBase:     DefaultLogoBaseURL,
		log:          zerolog.Nop(),
	}
	for _, o := range options {
		o(r)
	}
	return r
}

// Resolve runs the chain with the resolver's own Options.
func (r *Resolver) Resolve(ctx context.Context, identifier string) (Result, error) {
	return r.ResolveWith(ctx, identifier, r.opts)
}

// tier produces a value or reports that the chain should continue.
type tier struct {
	source Source
	run    func(ctx context.Context, identifier string, opts Options) (string, bool, error)
}

// ResolveWith runs the chain with per-call Options.
func (r *Resolver) ResolveWith(ctx context.Context, identifier string, opts Options) (Result, error) {
	if len(opts.ColorPalette) == 0 {
		opts.ColorPalette = DefaultPalette
	}
	if opts.DefaultTo == "" {
		opts.DefaultTo = DefaultAvatarPath
	}
	log := r.log.With().Str("identifier", identifier).Logger()

	for _, t := range r.tiers(opts) {
		url, ok, err := t.run(ctx, identifier, opts)
		if err != nil {
			return Result{}, fmt.Errorf("%s lookup failed: %w", t.source, err)
		}
		if ok {
			log.Debug().Str("source", string(t.source)).Msg("avatar resolved")
			return Result{URL: url, Source: t.source}, nil
		}
		log.Debug().Str("source", string(t.source)).Msg("avatar tier yielded nothing")
	}
	return Result{URL: opts.DefaultTo, Source: SourceDefault}, nil
}

func (r *Resolver) tiers(opts Options) []tier {
	tiers := []tier{
		{source: SourceGravatar, run: r.gravatarTier},
		{source: SourceLogo, run: r.logoTier},
	}
	if opts.UseBoringAvatars {
		tiers = append(tiers, tier{source: SourceBoring, run: r.renderTier(r.boring)})
	}
	// A failed boring avatar degrades to an identicon even when identicons
	// are not enabled on their own.
	if opts.UseBoringAvatars || opts.UseJdenticon {
		tiers = append(tiers, tier{source: SourceIdenticon, run: r.renderTier(r.identicon)})
	}
	return tiers
}

func (r *Resolver) gravatarTier(ctx context.Context, identifier string, _ Options) (string, bool, error) {
	return r.Gravatar(ctx, identifier)
}

func (r *Resolver) logoTier(ctx context.Context, identifier string, _ Options) (string, bool, error) {
	domain, ok := MailDomain(identifier)
	if !ok || IsMailHost(domain) {
		return "", false, nil
	}
	url, found, err := r.Logo(ctx, domain)
	if err != nil {
		r.log.Warn().Err(err).Str("domain", domain).Msg("logo lookup failed")
		return "", false, nil
	}
	return url, found, nil
}

func (r *Resolver) renderTier(g Generator) func(context.Context, string, Options) (string, bool, error) {
	return func(_ context.Context, identifier string, opts Options) (string, bool, error) {
		if g == nil {
			r.log.Warn().Err(ErrNoRenderer).Msg("avatar render skipped")
			return "", false, nil
		}
		url, err := r.render(g, identifier, opts.ColorPalette)
		if err != nil {
			r.log.Warn().Err(err).Msg("avatar render failed")
			return "", false, nil
		}
		return url, true, nil
	}
}

func (r *Resolver) render(g Generator, seed string, palette []string) (string, error) {
	svg, err := g.Generate(seed, palette)
	if err != nil {
		return "", fmt.Errorf("failed to generate svg: %w", err)
	}
	png, err := r.rasterizer.Rasterize(svg)
	if err != nil {
		return "", fmt.Errorf("failed to rasterize svg: %w", err)
	}
	return convert.BytesToDataURL(convert.FormatPNG, png), nil
}

// VercelURL is the avatar.vercel.sh gradient for identifier, usable as a
// remote DefaultTo.
func VercelURL(identifier string) string {
	return vercelBaseURL + identifier
}
