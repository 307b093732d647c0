package avatar

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGenerator struct {
	calls   atomic.Int32
	palette []string
	err     error
}

func (f *fakeGenerator) Generate(seed string, palette []string) ([]byte, error) {
	f.calls.Add(1)
	f.palette = palette
	if f.err != nil {
		return nil, f.err
	}
	return []byte("<svg>" + seed + "</svg>"), nil
}

type fakeRasterizer struct{}

func (fakeRasterizer) Rasterize(svg []byte) ([]byte, error) {
	return append([]byte("png:"), svg...), nil
}

type services struct {
	srv           *httptest.Server
	gravatarHits  atomic.Int32
	logoHits      atomic.Int32
	gravatarFound bool
	logoFound     bool
}

func newServices(t *testing.T) *services {
	t.Helper()
	s := &services{}
	mux := http.NewServeMux()
	mux.HandleFunc("/avatar/", func(w http.ResponseWriter, r *http.Request) {
		s.gravatarHits.Add(1)
		assert.Equal(t, "404", r.URL.Query().Get("d"))
		if !s.gravatarFound {
			http.NotFound(w, r)
			return
		}
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("/logo/", func(w http.ResponseWriter, r *http.Request) {
		s.logoHits.Add(1)
		if !s.logoFound {
			http.NotFound(w, r)
			return
		}
		http.Redirect(w, r, "/img/"+strings.TrimPrefix(r.URL.Path, "/logo/")+".png", http.StatusFound)
	})
	mux.HandleFunc("/img/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	s.srv = httptest.NewServer(mux)
	t.Cleanup(s.srv.Close)
	return s
}

type fixture struct {
	svc       *services
	boring    *fakeGenerator
	identicon *fakeGenerator
	resolver  *Resolver
}

func newFixture(t *testing.T, opts Options) *fixture {
	t.Helper()
	f := &fixture{
		svc:       newServices(t),
		boring:    &fakeGenerator{},
		identicon: &fakeGenerator{},
	}
	f.resolver = New(opts,
		WithHTTPClient(f.svc.srv.Client()),
		WithBaseURLs(f.svc.srv.URL+"/avatar/", f.svc.srv.URL+"/logo/"),
		WithBoringGenerator(f.boring),
		WithIdenticonGenerator(f.identicon),
		WithRasterizer(fakeRasterizer{}),
	)
	return f
}

func TestResolve_GravatarWins(t *testing.T) {
	f := newFixture(t, DefaultOptions())
	f.svc.gravatarFound = true
	f.svc.logoFound = true

	got, err := f.resolver.Resolve(context.Background(), "test@example.com")
	require.NoError(t, err)
	assert.Equal(t, SourceGravatar, got.Source)
	assert.Equal(t, f.svc.srv.URL+"/avatar/55502f40dc8b7c769880b10874abc9d0?d=404", got.URL)
	assert.Equal(t, int32(0), f.svc.logoHits.Load())
	assert.Equal(t, int32(0), f.boring.calls.Load())
}

func TestResolve_MailHostSkipsLogoLookup(t *testing.T) {
	f := newFixture(t, DefaultOptions())
	f.svc.logoFound = true

	got, err := f.resolver.Resolve(context.Background(), "someone@gmail.com")
	require.NoError(t, err)
	assert.Equal(t, SourceBoring, got.Source)
	assert.Equal(t, "data:image/png;base64,"+b64("png:<svg>someone@gmail.com</svg>"), got.URL)
	assert.Equal(t, int32(1), f.svc.gravatarHits.Load())
	assert.Equal(t, int32(0), f.svc.logoHits.Load(), "no logo request for public mail hosts")
	assert.Equal(t, int32(1), f.boring.calls.Load())
	assert.Equal(t, int32(0), f.identicon.calls.Load())
}

func TestResolve_CompanyLogo(t *testing.T) {
	f := newFixture(t, DefaultOptions())
	f.svc.logoFound = true

	got, err := f.resolver.Resolve(context.Background(), "jane@acme.io")
	require.NoError(t, err)
	assert.Equal(t, SourceLogo, got.Source)
	assert.Equal(t, f.svc.srv.URL+"/img/acme.io.png", got.URL)
	assert.Equal(t, int32(1), f.svc.logoHits.Load())
	assert.Equal(t, int32(0), f.boring.calls.Load())
}

func TestResolve_LogoMissingFallsBackToBoring(t *testing.T) {
	f := newFixture(t, DefaultOptions())

	got, err := f.resolver.Resolve(context.Background(), "jane@acme.io")
	require.NoError(t, err)
	assert.Equal(t, SourceBoring, got.Source)
	assert.Equal(t, int32(1), f.svc.logoHits.Load())
	assert.Equal(t, DefaultPalette, f.boring.palette)
}

func TestResolve_BoringFailureDegradesToIdenticon(t *testing.T) {
	f := newFixture(t, DefaultOptions())
	f.boring.err = errors.New("no canvas")

	got, err := f.resolver.Resolve(context.Background(), "a@gmail.com")
	require.NoError(t, err)
	assert.Equal(t, SourceIdenticon, got.Source)
	assert.Equal(t, int32(1), f.boring.calls.Load())
	assert.Equal(t, int32(1), f.identicon.calls.Load())
}

func TestResolve_IdenticonOnly(t *testing.T) {
	opts := DefaultOptions()
	opts.UseBoringAvatars = false
	opts.UseJdenticon = true
	f := newFixture(t, opts)

	got, err := f.resolver.Resolve(context.Background(), "a@gmail.com")
	require.NoError(t, err)
	assert.Equal(t, SourceIdenticon, got.Source)
	assert.Equal(t, int32(0), f.boring.calls.Load())
}

func TestResolve_BothEnabledConsultsOnlyBoring(t *testing.T) {
	opts := DefaultOptions()
	opts.UseJdenticon = true
	f := newFixture(t, opts)

	got, err := f.resolver.Resolve(context.Background(), "a@gmail.com")
	require.NoError(t, err)
	assert.Equal(t, SourceBoring, got.Source)
	assert.Equal(t, int32(0), f.identicon.calls.Load())
}

func TestResolve_Default(t *testing.T) {
	t.Run("renderers disabled", func(t *testing.T) {
		opts := Options{DefaultTo: "/static/anon.png"}
		f := newFixture(t, opts)

		got, err := f.resolver.Resolve(context.Background(), "a@gmail.com")
		require.NoError(t, err)
		assert.Equal(t, Result{URL: "/static/anon.png", Source: SourceDefault}, got)
	})

	t.Run("renderers fail", func(t *testing.T) {
		f := newFixture(t, DefaultOptions())
		f.boring.err = errors.New("boom")
		f.identicon.err = errors.New("boom")

		got, err := f.resolver.Resolve(context.Background(), "a@gmail.com")
		require.NoError(t, err)
		assert.Equal(t, Result{URL: DefaultAvatarPath, Source: SourceDefault}, got)
	})

	t.Run("empty default means built-in path", func(t *testing.T) {
		f := newFixture(t, Options{DefaultTo: ""})

		got, err := f.resolver.Resolve(context.Background(), "a@gmail.com")
		require.NoError(t, err)
		assert.Equal(t, Result{URL: DefaultAvatarPath, Source: SourceDefault}, got)
	})

	t.Run("remote default returned unchanged", func(t *testing.T) {
		remote := VercelURL("a@gmail.com")
		f := newFixture(t, Options{DefaultTo: remote})

		got, err := f.resolver.Resolve(context.Background(), "a@gmail.com")
		require.NoError(t, err)
		assert.Equal(t, remote, got.URL)
	})
}

func TestResolveWith_PerCallPalette(t *testing.T) {
	f := newFixture(t, DefaultOptions())
	palette := []string{"#000000", "#ffffff"}

	opts := DefaultOptions()
	opts.ColorPalette = palette
	_, err := f.resolver.ResolveWith(context.Background(), "a@gmail.com", opts)
	require.NoError(t, err)
	assert.Equal(t, palette, f.boring.palette)
}

type routeDoer struct {
	fail func(*http.Request) bool
	next HTTPDoer
}

func (d routeDoer) Do(req *http.Request) (*http.Response, error) {
	if d.fail(req) {
		return nil, errors.New("connection refused")
	}
	return d.next.Do(req)
}

func TestResolve_GravatarTransportErrorPropagates(t *testing.T) {
	f := newFixture(t, DefaultOptions())
	f.resolver.http = routeDoer{fail: func(*http.Request) bool { return true }}

	_, err := f.resolver.Resolve(context.Background(), "jane@acme.io")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "gravatar lookup failed")
	assert.Equal(t, int32(0), f.boring.calls.Load())
}

func TestResolve_LogoTransportErrorFallsThrough(t *testing.T) {
	f := newFixture(t, DefaultOptions())
	f.resolver.http = routeDoer{
		fail: func(r *http.Request) bool { return strings.HasPrefix(r.URL.Path, "/logo/") },
		next: f.svc.srv.Client(),
	}

	got, err := f.resolver.Resolve(context.Background(), "jane@acme.io")
	require.NoError(t, err)
	assert.Equal(t, SourceBoring, got.Source)
}

func TestResolve_CanceledContext(t *testing.T) {
	f := newFixture(t, DefaultOptions())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := f.resolver.Resolve(ctx, "jane@acme.io")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestResolve_BuiltInRenderers(t *testing.T) {
	svc := newServices(t)
	r := New(DefaultOptions(),
		WithHTTPClient(svc.srv.Client()),
		WithBaseURLs(svc.srv.URL+"/avatar/", svc.srv.URL+"/logo/"),
	)

	got, err := r.Resolve(context.Background(), "someone@icloud.com")
	require.NoError(t, err)
	assert.Equal(t, SourceBoring, got.Source)
	assert.True(t, strings.HasPrefix(got.URL, "data:image/png;base64,"))
}

func TestVercelURL(t *testing.T) {
	assert.Equal(t, "https://avatar.vercel.sh/a@b.co", VercelURL("a@b.co"))
}
