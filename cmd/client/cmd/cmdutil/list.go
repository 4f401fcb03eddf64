package cmdutil

import (
	"github.com/spf13/cobra"

	"receivecopy/internal/domain/receive"
)

// ListFlags - фильтр и страница, общие для list и print
type ListFlags struct {
	Search   string
	From     string
	To       string
	Page     int
	PageSize int
	Last     bool
}

func (f *ListFlags) Bind(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVarP(&f.Search, "search", "s", "", "строка поиска")
	fs.StringVar(&f.From, "from", "", "начало диапазона дат (YYYY-MM-DD)")
	fs.StringVar(&f.To, "to", "", "конец диапазона дат включительно (YYYY-MM-DD)")
	fs.IntVarP(&f.Page, "page", "p", 1, "номер страницы")
	fs.IntVar(&f.PageSize, "page-size", -1, "размер страницы, 0 - все записи")
	fs.BoolVar(&f.Last, "last", false, "последняя страница")
}

func (f *ListFlags) Params() (receive.ListParams, error) {
	from, to, err := receive.ParseDateRange(f.From, f.To)
	if err != nil {
		return receive.ListParams{}, err
	}

	params := receive.ListParams{
		Query:    receive.Query{Term: f.Search, From: from, To: to},
		Page:     f.Page,
		LastPage: f.Last,
	}
	if f.PageSize >= 0 {
		size := f.PageSize
		params.PageSize = &size
	}
	return params, nil
}
