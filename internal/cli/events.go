package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/registrar/internal/records"
	"github.com/roach88/registrar/internal/report"
	"github.com/roach88/registrar/internal/store"
)

var eventNoun = noun{singular: "event", plural: "events", title: "Event"}

// NewEventCommand creates the event command group.
func NewEventCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "event",
		Short: "Manage events",
	}

	cmd.AddCommand(newEventAddCommand(opts))
	cmd.AddCommand(getCommand(opts, eventNoun, (*store.Store).GetEvent, report.EventTable))
	cmd.AddCommand(listCommand(opts, eventNoun, (*store.Store).ListEvents, report.EventTable))
	cmd.AddCommand(deleteCommand(opts, eventNoun, (*store.Store).DeleteEvent))

	return cmd
}

func newEventAddCommand(opts *RootOptions) *cobra.Command {
	var e records.Event

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an event",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(opts, cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			if err := records.ValidateEvent(e); err != nil {
				return invalidInput(s.out, err)
			}

			res, err := s.store.AddEvent(cmd.Context(), e)
			if err != nil {
				return storageError("add event", err)
			}
			return s.out.Result("add event "+e.EventID, res,
				fmt.Sprintf("Event %s added.", e.EventID), e)
		},
	}

	cmd.Flags().StringVar(&e.EventID, "id", "", "event ID (e.g. EVT001)")
	cmd.Flags().StringVar(&e.Name, "name", "", "event name")
	cmd.Flags().StringVar(&e.Description, "description", "", "description (optional)")
	cmd.Flags().StringVar(&e.Date, "date", "", "date YYYY-MM-DD")
	cmd.Flags().StringVar(&e.Location, "location", "", "location")
	cmd.Flags().StringVar(&e.Organizer, "organizer", "", "organizer")
	cmd.Flags().StringVar(&e.Category, "category", "", "category (e.g. Academic)")
	markRequired(cmd, "id", "name", "date", "location", "organizer", "category")

	return cmd
}
