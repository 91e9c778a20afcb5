package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Whoami(ctx context.Context) error
	Families(ctx context.Context) error
	UseFamily(ctx context.Context, id string) error
	NewFamily(ctx context.Context) error
	Members(ctx context.Context) error
	Invite(ctx context.Context) error
	ShowInvitation(ctx context.Context, code string) error
	AcceptInvitation(ctx context.Context, code string) error
	Quests(ctx context.Context, status string) error
	AddQuest(ctx context.Context) error
	SubmitProof(ctx context.Context, questID string) error
	Approve(ctx context.Context, questID string) error
	Reject(ctx context.Context, questID string) error
	Points(ctx context.Context, userID string) error
	Upload(ctx context.Context, path string) error
	Reset(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the Nado Quest CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help             — show available commands
//	  - register         — create an account
//	  - login            — authenticate
//	  - invitation <code> — preview an invitation
//	  - exit | quit      — leave the program
//
//	Logged in:
//	  - help             — show available commands
//	  - whoami           — show the signed-in user
//	  - families         — list family memberships
//	  - use <familyId>   — select the active family
//	  - newfamily        — create a family
//	  - members          — list members of the active family
//	  - invite           — create an invitation for the active family
//	  - invitation <code> — preview an invitation
//	  - accept <code>    — accept an invitation
//	  - quests [status]  — list quests, optionally filtered by status
//	  - addquest         — create a quest
//	  - submit <questId> — upload a proof photo and submit it
//	  - approve <questId> — approve a submitted quest
//	  - reject <questId> — reject a submitted quest
//	  - points [userId]  — show a point balance
//	  - upload <path>    — upload a media file
//	  - reset            — wipe local state
//	  - logout           — log out
//	  - exit | quit      — leave the program
//
// Any errors returned by command handlers are ignored here; handlers should
// report their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("nq %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: whoami, families, use, newfamily, members, invite, invitation, accept, quests, addquest, submit, approve, reject, points, upload, reset, logout, exit")
			} else {
				printlnFn("Available commands: register, login, invitation, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "whoami":
			_ = a.Whoami(ctx)

		case "families":
			_ = a.Families(ctx)

		case "use":
			if len(args) == 0 {
				printlnFn("Usage: use <familyId>")
				continue
			}
			_ = a.UseFamily(ctx, args[0])

		case "newfamily":
			_ = a.NewFamily(ctx)

		case "members":
			_ = a.Members(ctx)

		case "invite":
			_ = a.Invite(ctx)

		case "invitation":
			if len(args) == 0 {
				printlnFn("Usage: invitation <code>")
				continue
			}
			_ = a.ShowInvitation(ctx, args[0])

		case "accept":
			if len(args) == 0 {
				printlnFn("Usage: accept <code>")
				continue
			}
			_ = a.AcceptInvitation(ctx, args[0])

		case "q", "quests":
			status := ""
			if len(args) > 0 {
				status = args[0]
			}
			_ = a.Quests(ctx, status)

		case "addquest":
			_ = a.AddQuest(ctx)

		case "submit":
			if len(args) == 0 {
				printlnFn("Usage: submit <questId>")
				continue
			}
			_ = a.SubmitProof(ctx, args[0])

		case "approve":
			if len(args) == 0 {
				printlnFn("Usage: approve <questId>")
				continue
			}
			_ = a.Approve(ctx, args[0])

		case "reject":
			if len(args) == 0 {
				printlnFn("Usage: reject <questId>")
				continue
			}
			_ = a.Reject(ctx, args[0])

		case "points":
			userID := ""
			if len(args) > 0 {
				userID = args[0]
			}
			_ = a.Points(ctx, userID)

		case "upload":
			if len(args) == 0 {
				printlnFn("Usage: upload <path>")
				continue
			}
			_ = a.Upload(ctx, args[0])

		case "reset":
			_ = a.Reset(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
