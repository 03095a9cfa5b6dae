package commands

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/raywall/glue-catalog-toolkit/model"
)

type enumEntry struct {
	parse  func(string) (string, error)
	values func() []string
}

type vocabulary[E ~string] interface {
	~string
	Values() []E
}

func entry[E vocabulary[E]](parse func(string) (E, error)) enumEntry {
	return enumEntry{
		parse: func(s string) (string, error) {
			v, err := parse(s)
			return string(v), err
		},
		values: func() []string {
			var zero E
			vals := zero.Values()
			out := make([]string, len(vals))
			for i, v := range vals {
				out[i] = string(v)
			}
			return out
		},
	}
}

var enums = map[string]enumEntry{
	"CrawlState":                 entry(model.ParseCrawlState),
	"JobRunState":                entry(model.ParseJobRunState),
	"UpdateBehavior":             entry(model.ParseUpdateBehavior),
	"DeleteBehavior":             entry(model.ParseDeleteBehavior),
	"CrawlerState":               entry(model.ParseCrawlerState),
	"LastCrawlStatus":            entry(model.ParseLastCrawlStatus),
	"WorkerType":                 entry(model.ParseWorkerType),
	"ConnectionType":             entry(model.ParseConnectionType),
	"TriggerType":                entry(model.ParseTriggerType),
	"TriggerState":               entry(model.ParseTriggerState),
	"Logical":                    entry(model.ParseLogical),
	"LogicalOperator":            entry(model.ParseLogicalOperator),
	"S3EncryptionMode":           entry(model.ParseS3EncryptionMode),
	"CloudWatchEncryptionMode":   entry(model.ParseCloudWatchEncryptionMode),
	"JobBookmarksEncryptionMode": entry(model.ParseJobBookmarksEncryptionMode),
	"Permission":                 entry(model.ParsePermission),
}

func enumCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "enum [tipo] [valor]",
		Short: "Lista os vocabulários ou valida um valor de wire",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				names := make([]string, 0, len(enums))
				for name := range enums {
					names = append(names, name)
				}
				sort.Strings(names)
				fmt.Fprintln(out, strings.Join(names, "\n"))
				return nil
			}

			e, ok := enums[args[0]]
			if !ok {
				return fmt.Errorf("vocabulário desconhecido: %s", args[0])
			}
			if len(args) == 1 {
				fmt.Fprintln(out, strings.Join(e.values(), "\n"))
				return nil
			}

			v, err := e.parse(args[1])
			if err != nil {
				return err
			}
			fmt.Fprintln(out, v)
			return nil
		},
	}
}
