// internal/translate/translator.go
package translate

import "context"

// Translator bridges text between the pivot language and a requested user
// language. Real deployments swap in a machine-translation backend; the core
// only depends on this contract. Implementations may fail; callers are
// expected to fall back to the untranslated source text rather than failing
// the whole request.
type Translator interface {
	Translate(ctx context.Context, text, targetLang, sourceLang string) (string, error)
}

// Func adapts a plain function to the Translator interface.
type Func func(ctx context.Context, text, targetLang, sourceLang string) (string, error)

func (f Func) Translate(ctx context.Context, text, targetLang, sourceLang string) (string, error) {
	return f(ctx, text, targetLang, sourceLang)
}

// Passthrough returns the input unchanged, for deployments with no
// translation backend at all.
func Passthrough() Translator {
	return Func(func(_ context.Context, text, _, _ string) (string, error) {
		return text, nil
	})
}
