package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/jobkeeper/internal/common"
	"github.com/dmitrijs2005/jobkeeper/internal/models"
)

// collectionArg resolves the first argument, or fails with usage.
func collectionArg(args []string, usage string) (string, error) {
	if len(args) == 0 {
		return "", fmt.Errorf("usage: %s", usage)
	}
	return resolveCollection(args[0])
}

func idArg(args []string, usage string) (string, string, error) {
	if len(args) < 2 {
		return "", "", fmt.Errorf("usage: %s", usage)
	}
	collection, err := resolveCollection(args[0])
	if err != nil {
		return "", "", err
	}
	return collection, args[1], nil
}

func (a *App) rows(collection string) []map[string]any {
	switch collection {
	case models.CollectionApplications:
		return rowMaps(a.cache.Applications())
	case models.CollectionInterviews:
		return rowMaps(a.cache.Interviews())
	case models.CollectionTasks:
		return rowMaps(a.cache.Tasks())
	default:
		return rowMaps(a.cache.Contacts())
	}
}

func (a *App) row(collection, id string) (map[string]any, error) {
	for _, r := range a.rows(collection) {
		if r["id"] == id {
			return r, nil
		}
	}
	return nil, fmt.Errorf("%s %s: %w", collection, id, common.ErrNotFound)
}

// List prints a collection, optionally filtered with key=value pairs and
// sorted with sort=[-]key.
func (a *App) List(ctx context.Context, args []string) error {
	collection, err := collectionArg(args, "list <collection> [field=value ...] [sort=[-]field]")
	if err != nil {
		return err
	}
	q, err := parseQuery(collection, args[1:])
	if err != nil {
		return err
	}
	if err := a.cache.Load(ctx); err != nil {
		return err
	}

	renderTable(a.out, collection, q.apply(a.rows(collection)))
	return nil
}

func (a *App) Show(ctx context.Context, args []string) error {
	collection, id, err := idArg(args, "show <collection> <id>")
	if err != nil {
		return err
	}
	if err := a.cache.Load(ctx); err != nil {
		return err
	}

	r, err := a.row(collection, id)
	if err != nil {
		return err
	}
	renderCard(a.out, collection, r)
	return nil
}

func addRecord[T models.Record](ctx context.Context, a *App, collection string, add func(context.Context, T) (T, error)) error {
	patch, err := fillNew(a.reader, a.out, forms[collection])
	if err != nil {
		return err
	}

	var draft T
	if err := decodePatch(patch, &draft); err != nil {
		return err
	}

	row, err := add(ctx, draft)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Added %s.\n", row.Key())
	return nil
}

// Add asks for a new record and stores it once the server accepted it.
func (a *App) Add(ctx context.Context, args []string) error {
	collection, err := collectionArg(args, "add <collection>")
	if err != nil {
		return err
	}
	if err := a.cache.Load(ctx); err != nil {
		return err
	}

	switch collection {
	case models.CollectionApplications:
		return addRecord(ctx, a, collection, a.cache.AddApplication)
	case models.CollectionInterviews:
		return addRecord(ctx, a, collection, a.cache.AddInterview)
	case models.CollectionTasks:
		return addRecord(ctx, a, collection, a.cache.AddTask)
	default:
		return addRecord(ctx, a, collection, a.cache.AddContact)
	}
}

func editRecord[T models.Record](ctx context.Context, a *App, collection, id string, update func(context.Context, string, models.Patch) (T, error)) error {
	current, err := a.row(collection, id)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Enter keeps a value, %q clears it.\n", clearValue)
	patch, err := fillEdit(a.reader, a.out, forms[collection], current)
	if err != nil {
		return err
	}
	if len(patch) == 0 {
		fmt.Fprintln(a.out, "Nothing changed.")
		return nil
	}

	row, err := update(ctx, id, patch)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Updated %s.\n", row.Key())
	return nil
}

func (a *App) Edit(ctx context.Context, args []string) error {
	collection, id, err := idArg(args, "edit <collection> <id>")
	if err != nil {
		return err
	}
	if err := a.cache.Load(ctx); err != nil {
		return err
	}

	switch collection {
	case models.CollectionApplications:
		return editRecord(ctx, a, collection, id, a.cache.UpdateApplication)
	case models.CollectionInterviews:
		return editRecord(ctx, a, collection, id, a.cache.UpdateInterview)
	case models.CollectionTasks:
		return editRecord(ctx, a, collection, id, a.cache.UpdateTask)
	default:
		return editRecord(ctx, a, collection, id, a.cache.UpdateContact)
	}
}

// Delete removes a record after confirmation.
func (a *App) Delete(ctx context.Context, args []string) error {
	collection, id, err := idArg(args, "delete <collection> <id>")
	if err != nil {
		return err
	}

	answer, err := getSimpleText(a.reader, fmt.Sprintf("Delete %s %s? [y/N]", collection, id), a.out)
	if err != nil {
		return err
	}
	if !strings.EqualFold(answer, "y") && !strings.EqualFold(answer, "yes") {
		fmt.Fprintln(a.out, "Cancelled.")
		return nil
	}

	remove := map[string]func(context.Context, string) error{
		models.CollectionApplications: a.cache.DeleteApplication,
		models.CollectionInterviews:   a.cache.DeleteInterview,
		models.CollectionTasks:        a.cache.DeleteTask,
		models.CollectionContacts:     a.cache.DeleteContact,
	}[collection]
	if err := remove(ctx, id); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Deleted %s.\n", id)
	return nil
}

// Toggle flips a task between done and to do.
func (a *App) Toggle(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: toggle <task id>")
	}
	if err := a.cache.Load(ctx); err != nil {
		return err
	}

	t, err := a.cache.ToggleTask(ctx, args[0])
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Task %q is now %s.\n", t.Title, t.Status)
	return nil
}

func (a *App) Dashboard(ctx context.Context) error {
	if err := a.cache.Load(ctx); err != nil {
		return err
	}
	now := a.now()
	renderDashboard(a.out, a.cache.Stats(now), now)
	return nil
}

// Reload refetches every collection from the server.
func (a *App) Reload(ctx context.Context) error {
	if err := a.cache.Reload(ctx); err != nil {
		return err
	}
	a.load(ctx)
	return nil
}
