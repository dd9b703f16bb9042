package cli

import (
	"context"
	"fmt"

	"github.com/Dns2690/Rentals/internal/audit"
	"github.com/Dns2690/Rentals/internal/common"
	"github.com/Dns2690/Rentals/internal/validate"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// maxLoginAttempts bounds the credential prompt loop before the session
// is abandoned.
const maxLoginAttempts = 3

// login prompts for credentials up to maxLoginAttempts times. On success it
// stores the authenticated identity and records an ENTRADA line in the trail.
func (a *App) login(ctx context.Context) error {
	for attempt := 1; attempt <= maxLoginAttempts; attempt++ {
		username, err := getSimpleText(a.reader, "Correo electrónico", a.out)
		if err != nil {
			return err
		}
		password, err := getPassword("Contraseña", a.out)
		if err != nil {
			return err
		}

		id, err := a.auth.Authenticate(ctx, username, password)
		if err != nil {
			fmt.Fprintln(a.out, "Credenciales incorrectas.")
			a.log.Warn(ctx, "login failed", "username", username, "attempt", attempt)
			continue
		}

		a.identity = id
		fmt.Fprintf(a.out, "Bienvenido(a) %s (%s)\n", id.Name, id.Role)
		a.trail.Record(id.Username, audit.ActionLogin)
		return nil
	}

	fmt.Fprintln(a.out, "Demasiados intentos fallidos.")
	return fmt.Errorf("login attempts exhausted: %w", common.ErrUnauthorized)
}

// getValidPassword re-prompts until the entered password satisfies the
// length rule. Registration flows use it; edit flows accept empty as "keep".
func (a *App) getValidPassword(prompt string) (string, error) {
	for {
		pw, err := getPassword(prompt, a.out)
		if err != nil {
			return "", err
		}
		if validate.Password(pw) {
			return pw, nil
		}
		fmt.Fprintln(a.out, "Valor inválido, intente de nuevo.")
	}
}

// logout closes the session and records a SALIDA line in the trail.
func (a *App) logout() {
	if a.identity == nil {
		return
	}
	a.trail.Record(a.identity.Username, audit.ActionLogout)
	a.identity = nil
}
