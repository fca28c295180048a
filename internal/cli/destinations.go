package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/travelbook/internal/common"
	"github.com/dmitrijs2005/travelbook/internal/models"
)

const createdLayout = "2006-01-02 15:04"

// List reloads and prints the user's destinations.
func (a *App) List(ctx context.Context) error {
	if err := a.reloadView(ctx); err != nil {
		a.report(ctx, "list", err)
		return err
	}
	a.printList(a.view)
	return nil
}

// Search prints the user's destinations whose title or description contains
// query. An empty query prints everything.
func (a *App) Search(ctx context.Context, query string) error {
	u, err := a.currentUser()
	if err != nil {
		a.report(ctx, "search", err)
		return err
	}
	found, err := a.destinations.Search(ctx, u.Email, query)
	if err != nil {
		a.report(ctx, "search", err)
		return err
	}
	a.printList(found)
	return nil
}

// Add prompts for the destination fields and creates it for the current user.
func (a *App) Add(ctx context.Context) error {
	u, err := a.currentUser()
	if err != nil {
		a.report(ctx, "add", err)
		return err
	}

	title, err := getSimpleText(a.reader, "Enter title", a.out)
	if err != nil {
		return err
	}
	if title == "" {
		err := fmt.Errorf("%w: title is required", common.ErrInvalidInput)
		a.report(ctx, "add", err)
		return err
	}
	description, err := getMultiline(a.reader, "Enter description", a.out)
	if err != nil {
		return err
	}
	imageURL, err := getSimpleText(a.reader, "Enter image URL (optional)", a.out)
	if err != nil {
		return err
	}

	d, err := a.destinations.Create(ctx, u.Email, title, description, imageURL)
	if err != nil {
		a.report(ctx, "add", err)
		return err
	}
	fmt.Fprintf(a.out, "Added %s (%s)\n", d.Title, d.ID)

	return a.refresh(ctx)
}

// Show prints a single destination from the user's view.
func (a *App) Show(ctx context.Context, id string) error {
	d, err := a.lookup(ctx, id)
	if err != nil {
		a.report(ctx, "show", err)
		return err
	}
	a.printDestination(d)
	return nil
}

// Edit prompts for new field values. An empty answer keeps the current value.
func (a *App) Edit(ctx context.Context, id string) error {
	d, err := a.lookup(ctx, id)
	if err != nil {
		a.report(ctx, "edit", err)
		return err
	}

	var patch models.DestinationPatch

	title, err := getSimpleText(a.reader, fmt.Sprintf("Title [%s] (Enter to keep)", d.Title), a.out)
	if err != nil {
		return err
	}
	if title != "" {
		patch.Title = &title
	}
	description, err := getMultiline(a.reader, "Description (empty to keep)", a.out)
	if err != nil {
		return err
	}
	if description != "" {
		patch.Description = &description
	}
	imageURL, err := getSimpleText(a.reader, fmt.Sprintf("Image URL [%s] (Enter to keep)", d.ImageURL), a.out)
	if err != nil {
		return err
	}
	if imageURL != "" {
		patch.ImageURL = &imageURL
	}

	if patch.IsEmpty() {
		fmt.Fprintln(a.out, "Nothing changed.")
		return nil
	}

	updated, err := a.destinations.Update(ctx, d.ID, patch)
	if err != nil {
		a.report(ctx, "edit", err)
		return err
	}
	fmt.Fprintf(a.out, "Updated %s\n", updated.Title)

	return a.refresh(ctx)
}

// Delete asks for confirmation and removes a destination from the user's view.
func (a *App) Delete(ctx context.Context, id string) error {
	d, err := a.lookup(ctx, id)
	if err != nil {
		a.report(ctx, "delete", err)
		return err
	}

	answer, err := getSimpleText(a.reader, fmt.Sprintf("Delete %q? [y/N]", d.Title), a.out)
	if err != nil {
		return err
	}
	if !strings.EqualFold(answer, "y") && !strings.EqualFold(answer, "yes") {
		fmt.Fprintln(a.out, "Cancelled.")
		return nil
	}

	if err := a.destinations.Delete(ctx, d.ID); err != nil {
		a.report(ctx, "delete", err)
		return err
	}
	fmt.Fprintf(a.out, "Deleted %s\n", d.Title)

	return a.refresh(ctx)
}

// lookup resolves id against the user's view: an exact id, or a prefix that
// matches exactly one destination. Ids outside the view are reported as not
// found so users cannot touch each other's records.
func (a *App) lookup(ctx context.Context, id string) (models.Destination, error) {
	if err := a.reloadView(ctx); err != nil {
		return models.Destination{}, err
	}

	var match []models.Destination
	for _, d := range a.view {
		if d.ID == id {
			return a.destinations.Get(ctx, d.ID)
		}
		if id != "" && strings.HasPrefix(d.ID, id) {
			match = append(match, d)
		}
	}

	switch len(match) {
	case 0:
		return models.Destination{}, common.ErrorNotFound
	case 1:
		return a.destinations.Get(ctx, match[0].ID)
	default:
		return models.Destination{}, fmt.Errorf("%w: id prefix %q is ambiguous", common.ErrInvalidInput, id)
	}
}

// refresh reloads the view after a mutation.
func (a *App) refresh(ctx context.Context) error {
	if err := a.reloadView(ctx); err != nil {
		a.report(ctx, "reload", err)
		return err
	}
	return nil
}

func (a *App) printList(items []models.Destination) {
	if len(items) == 0 {
		fmt.Fprintln(a.out, "No destinations.")
		return
	}
	for _, d := range items {
		fmt.Fprintf(a.out, "%s  %s\n", d.ID, d.Title)
	}
}

func (a *App) printDestination(d models.Destination) {
	fmt.Fprintf(a.out, "ID:          %s\n", d.ID)
	fmt.Fprintf(a.out, "Title:       %s\n", d.Title)
	fmt.Fprintf(a.out, "Description: %s\n", d.Description)
	fmt.Fprintf(a.out, "Image:       %s\n", d.ImageURL)
	fmt.Fprintf(a.out, "Created:     %s\n", d.Created().Format(createdLayout))
}
