package sheets

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Login runs the installed-app OAuth flow: it prints the consent URL on w,
// reads the granted code from r, and saves the exchanged token to tokenPath.
func Login(ctx context.Context, w io.Writer, r io.Reader, tokenPath string) error {
	conf, err := oauthConfig()
	if err != nil {
		return err
	}

	url := conf.AuthCodeURL("state-token")
	fmt.Fprintf(w, "Open the following URL in your browser, authorize read access,\nthen paste the code here:\n\n%s\n\ncode: ", url)

	var code string
	if _, err := fmt.Fscan(r, &code); err != nil {
		return fmt.Errorf("could not read authorization code: %w", err)
	}

	tok, err := conf.Exchange(ctx, code)
	if err != nil {
		return fmt.Errorf("could not exchange authorization code: %w", err)
	}

	f, err := os.OpenFile(tokenPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("could not save token to %q: %w", tokenPath, err)
	}
	defer f.Close()
	return json.NewEncoder(f).Encode(tok)
}
