package menu

import (
	"context"
	"fmt"

	"github.com/roach88/registrar/internal/records"
	"github.com/roach88/registrar/internal/report"
)

func (m *Menu) eventMenu(ctx context.Context) error {
	return m.submenu(ctx, "EVENT TRACKING", []action{
		{"Add New Event", m.addEvent},
		{"View All Events", m.viewEvents},
		{"Search Event", m.searchEvent},
		{"Delete Event", m.deleteEvent},
	})
}

func (m *Menu) addEvent(ctx context.Context) error {
	m.title("Add New Event")

	var e records.Event
	var err error
	if e.EventID, err = m.required("Event ID (e.g., EVT001)"); err != nil {
		return err
	}
	if e.Name, err = m.required("Event Name"); err != nil {
		return err
	}
	if e.Description, err = m.readLine("Description (optional)"); err != nil {
		return err
	}
	if e.Date, err = m.date("Date (YYYY-MM-DD)"); err != nil {
		return err
	}
	if e.Location, err = m.required("Location"); err != nil {
		return err
	}
	if e.Organizer, err = m.required("Organizer"); err != nil {
		return err
	}
	if e.Category, err = m.required("Category (e.g., Academic, Sports, Cultural)"); err != nil {
		return err
	}

	res, err := m.store.AddEvent(ctx, e)
	if err != nil {
		return err
	}
	if !res.OK() {
		m.failure("Failed to add event. ID may already exist.")
		return nil
	}
	m.success("Event %s added successfully!", e.Name)
	return nil
}

func (m *Menu) viewEvents(ctx context.Context) error {
	m.title("All Events")
	events, err := m.store.ListEvents(ctx)
	if err != nil {
		return err
	}
	if len(events) == 0 {
		fmt.Fprintln(m.out, "  No events found.")
		return nil
	}
	report.EventTable(m.out, events)
	return nil
}

func (m *Menu) searchEvent(ctx context.Context) error {
	m.title("Search Event")
	id, err := m.required("Enter Event ID")
	if err != nil {
		return err
	}

	e, found, err := m.store.GetEvent(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		m.failure("Event with ID %s not found.", id)
		return nil
	}

	fmt.Fprintln(m.out, "\n  Event Found:")
	fmt.Fprintf(m.out, "  ID: %s\n", e.EventID)
	fmt.Fprintf(m.out, "  Name: %s\n", e.Name)
	fmt.Fprintf(m.out, "  Description: %s\n", e.Description)
	fmt.Fprintf(m.out, "  Date: %s\n", e.Date)
	fmt.Fprintf(m.out, "  Location: %s\n", e.Location)
	fmt.Fprintf(m.out, "  Organizer: %s\n", e.Organizer)
	fmt.Fprintf(m.out, "  Category: %s\n", e.Category)
	return nil
}

func (m *Menu) deleteEvent(ctx context.Context) error {
	m.title("Delete Event")
	id, err := m.required("Enter Event ID")
	if err != nil {
		return err
	}

	e, found, err := m.store.GetEvent(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		m.failure("Event with ID %s not found.", id)
		return nil
	}

	fmt.Fprintf(m.out, "\n  Event: %s (%s)\n", e.Name, e.EventID)
	ok, err := m.confirm("Are you sure you want to delete this event?")
	if err != nil || !ok {
		return err
	}

	res, err := m.store.DeleteEvent(ctx, id)
	if err != nil {
		return err
	}
	if !res.OK() {
		m.failure("Failed to delete event.")
		return nil
	}
	m.success("Event deleted successfully!")
	return nil
}
