package main

import (
	_ "embed"

	"go.uber.org/zap"

	"github.com/hubastard/grui/engine/decl"
	"github.com/hubastard/grui/engine/logging"
	"github.com/hubastard/grui/engine/ui"
)

//go:embed assets/hello.yaml
var helloYAML []byte

// signInDemo is the built-in screen. Clicking "Sign in" toggles a greeting
// below the form.
type signInDemo struct {
	signedIn bool
	log      *zap.Logger
}

func newSignInDemo() *signInDemo {
	return &signInDemo{log: logging.Named("demo")}
}

func (d *signInDemo) Build(u *ui.Ui) error {
	u.Label("Login")
	u.Label("Password")
	u.Horizontal(func(row *ui.Ui) {
		if row.Button("Sign in").Key("signin").Clicked() {
			d.signedIn = !d.signedIn
			d.log.Info("sign in clicked", zap.Bool("signed_in", d.signedIn))
		}
	})
	if d.signedIn {
		u.Label("Welcome back")
	}
	return nil
}

// layoutBuilder rebuilds items every frame and logs clicks on keyed buttons.
func layoutBuilder(items []decl.Item) ui.Builder {
	keys := buttonKeys(items, nil)
	log := logging.Named("layout")
	return func(u *ui.Ui) error {
		if err := u.Populate(items); err != nil {
			return err
		}
		for _, k := range keys {
			b, err := u.Find(k)
			if err != nil {
				return err
			}
			if b.Clicked() {
				log.Info("button clicked", zap.String("key", k), zap.Stringer("uid", b.UID()))
			}
		}
		return nil
	}
}

func buttonKeys(items []decl.Item, out []string) []string {
	for _, it := range items {
		if it.Tag == ui.TagButton && it.Key != "" {
			out = append(out, it.Key)
		}
		if it.Value.IsList() {
			out = buttonKeys(it.Value.List, out)
		}
	}
	return out
}

// pickBuilder returns the layout file's builder, or the built-in demo when
// path is empty. "hello" names the embedded copy of the demo layout.
func pickBuilder(path string) (ui.Builder, error) {
	switch path {
	case "":
		return newSignInDemo().Build, nil
	case "hello":
		items, err := decl.Parse(helloYAML)
		if err != nil {
			return nil, err
		}
		return layoutBuilder(items), nil
	}
	items, err := decl.Load(path)
	if err != nil {
		return nil, err
	}
	return layoutBuilder(items), nil
}
