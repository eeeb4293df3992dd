package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/roach88/registrar/internal/store"
)

// noun names a record kind in help text and messages.
type noun struct {
	singular string // "student"
	plural   string // "students"
	title    string // "Student"
}

// getCommand builds "<kind> get <id>". The record is rendered with the
// kind's table in text mode.
func getCommand[T any](
	opts *RootOptions,
	n noun,
	get func(*store.Store, context.Context, string) (T, bool, error),
	table func(io.Writer, []T),
) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: fmt.Sprintf("Show one %s", n.singular),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(opts, cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			rec, found, err := get(s.store, cmd.Context(), args[0])
			if err != nil {
				return storageError("get "+n.singular, err)
			}
			if !found {
				return s.out.Fail(ExitFailure, CodeNotFound,
					fmt.Sprintf("%s with ID %s not found", n.title, args[0]), nil)
			}
			return s.out.Emit(rec, func(w io.Writer) {
				table(w, []T{rec})
			})
		},
	}
}

// listCommand builds "<kind> list".
func listCommand[T any](
	opts *RootOptions,
	n noun,
	list func(*store.Store, context.Context) ([]T, error),
	table func(io.Writer, []T),
) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: fmt.Sprintf("List all %s", n.plural),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(opts, cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			items, err := list(s.store, cmd.Context())
			if err != nil {
				return storageError("list "+n.plural, err)
			}
			return emitList(s.out, n.plural, items, table)
		},
	}
}

// deleteCommand builds "<kind> delete <id>".
func deleteCommand(
	opts *RootOptions,
	n noun,
	del func(*store.Store, context.Context, string) (store.Result, error),
) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: fmt.Sprintf("Delete a %s", n.singular),
		Long: fmt.Sprintf(`Delete a %s by ID.

Enrollment rows that reference it are left in place.`, n.singular),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(opts, cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			id := args[0]
			res, err := del(s.store, cmd.Context(), id)
			if err != nil {
				return storageError("delete "+n.singular, err)
			}
			return s.out.Result("delete "+n.singular+" "+id, res,
				fmt.Sprintf("%s %s deleted.", n.title, id),
				map[string]string{"id": id})
		},
	}
}

// emitList writes items, or a "No <plural> found." line when there are none.
// JSON output is always an array.
func emitList[T any](out *OutputFormatter, plural string, items []T, table func(io.Writer, []T)) error {
	if items == nil {
		items = []T{}
	}
	return out.Emit(items, func(w io.Writer) {
		if len(items) == 0 {
			fmt.Fprintf(w, "No %s found.\n", plural)
			return
		}
		table(w, items)
	})
}

// invalidInput reports a record that failed front-end validation.
func invalidInput(out *OutputFormatter, err error) error {
	return out.Fail(ExitCommandError, CodeInvalidInput, err.Error(), nil)
}

// markRequired marks flags required; the names are fixed at build time.
func markRequired(cmd *cobra.Command, names ...string) {
	for _, name := range names {
		_ = cmd.MarkFlagRequired(name)
	}
}
