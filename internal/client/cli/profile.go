package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/jobkeeper/internal/client/profile"
	"github.com/dmitrijs2005/jobkeeper/internal/common"
)

// Profile shows the profile, or with "edit" asks for its text fields.
func (a *App) Profile(ctx context.Context, args []string) error {
	if len(args) > 0 && args[0] != "edit" {
		return fmt.Errorf("usage: profile [edit]")
	}

	p, err := a.profiles.Get(ctx)
	if err != nil {
		return a.refused(ctx, err)
	}
	if len(args) == 0 {
		renderProfile(a.out, p)
		return nil
	}

	fmt.Fprintln(a.out, "Enter keeps a value.")
	edits := []struct {
		label string
		dst   *string
		long  bool
	}{
		{"Full name", &p.FullName, false},
		{"Headline", &p.Headline, false},
		{"Location", &p.Location, false},
		{"Bio", &p.Bio, true},
	}
	for _, e := range edits {
		prompt := fmt.Sprintf("%s (%s)", e.label, *e.dst)
		read := getSimpleText
		if e.long {
			read = getMultiline
		}
		v, err := read(a.reader, prompt, a.out)
		if err != nil {
			return err
		}
		if v != "" {
			*e.dst = v
		}
	}

	skills, err := getSimpleText(a.reader, fmt.Sprintf("Skills, comma separated (%s)", strings.Join(p.Skills, ", ")), a.out)
	if err != nil {
		return err
	}
	if skills != "" {
		p.Skills = splitList(skills)
	}

	if _, err := a.profiles.Save(ctx, p); err != nil {
		return a.refused(ctx, err)
	}
	fmt.Fprintln(a.out, "Profile saved.")
	return nil
}

func splitList(s string) []string {
	out := []string{}
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// Upload attaches a local file to the profile as avatar, cv or portfolio.
func (a *App) Upload(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: upload <avatar|cv|portfolio> <path>")
	}

	p, err := a.profiles.Attach(ctx, profile.Slot(strings.ToLower(args[0])), strings.Join(args[1:], " "))
	if err != nil {
		return a.refused(ctx, err)
	}

	url := map[profile.Slot]*string{
		profile.SlotAvatar:    p.AvatarURL,
		profile.SlotCV:        p.CVURL,
		profile.SlotPortfolio: p.PortfolioURL,
	}[profile.Slot(strings.ToLower(args[0]))]
	fmt.Fprintf(a.out, "Uploaded: %s\n", text(deref(url)))
	return nil
}

// refused ends the session when the server no longer accepts it. The cache
// controller does the same for record calls.
func (a *App) refused(ctx context.Context, err error) error {
	if errors.Is(err, common.ErrAuth) {
		a.session.Expire(ctx)
	}
	return err
}
