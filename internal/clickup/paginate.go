package clickup

import (
	"context"
	"encoding/json"
)

// pageSize is ClickUp's fixed page size for paginated result sets.
const pageSize = 100

// fetchAllPages walks a paginated endpoint from page 0 upwards, handing each
// raw page to collect. collect reports how many records the page held and
// whether the endpoint flagged it as the last one.
//
// Pages are requested strictly in order, never concurrently: page N+1 only
// goes out once page N's outcome is known, which keeps ClickUp's implicit
// page-index semantics intact. The walk stops on a short page, an explicit
// last-page signal, or an empty page. The first error aborts the walk; pages
// already collected stay collected.
func (c *Client) fetchAllPages(ctx context.Context, op string, pathVals map[string]string, params Params, collect func(json.RawMessage) (n int, last bool, err error), copts ...CallOption) error {
	for page := 0; ; page++ {
		pageParams := cloneParams(params)
		pageParams["page"] = page

		var raw json.RawMessage
		if err := c.call(ctx, op, pathVals, pageParams, nil, &raw, copts...); err != nil {
			return err
		}
		n, last, err := collect(raw)
		if err != nil {
			return err
		}
		c.log.Debug("fetched page", "op", op, "page", page, "records", n, "last", last)
		if last || n == 0 || n < pageSize {
			return nil
		}
	}
}
