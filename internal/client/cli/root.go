package cli

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
)

func (a *App) getStatus() string {
	s := ""
	if u := a.sessions.User(); u != nil {
		s = u.Email
	}
	if fam := a.families.CurrentFamily(); fam != nil {
		s = s + " / " + fam.Name
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

// Root starts the interactive loop. A previously persisted session is
// already rehydrated by this point, so memberships are refreshed up front
// and the user lands in an authenticated prompt without logging in again.
func (a *App) Root(ctx context.Context) {

	log.Println("Welcome to Nado Quest CLI (type 'help' for commands)")

	if a.isLoggedIn() {
		if err := a.provider.Refresh(ctx); err != nil {
			log.Printf("could not refresh families: %v", err)
		}
	}

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}
