package postgres

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/lib/pq"

	"campaign-dashboard/internal/core/domain"
	"campaign-dashboard/internal/core/port"
)

const campaignColumns = `
            c.id,
            c.name,
            c.channel_id,
            c.start_date,
            c.end_date,
            c.budget,
            c.created_at,
            c.updated_at,
            ch.id,
            ch.name,
            ch.status,
            ch.created_at,
            ch.updated_at`

const campaignJoin = `LEFT JOIN channels ch ON ch.id = c.channel_id`

// campaignSortColumns is the only path from a sort field to SQL text.
var campaignSortColumns = map[domain.SortField]string{
	domain.SortByName:      "c." + pq.QuoteIdentifier("name"),
	domain.SortByStartDate: "c." + pq.QuoteIdentifier("start_date"),
	domain.SortByEndDate:   "c." + pq.QuoteIdentifier("end_date"),
	domain.SortByBudget:    "c." + pq.QuoteIdentifier("budget"),
	domain.SortByChannel:   "ch." + pq.QuoteIdentifier("name"),
}

var sortDirections = map[domain.SortOrder]string{
	domain.SortAsc:  "ASC",
	domain.SortDesc: "DESC",
}

// campaignWhere renders the filter as a WHERE clause whose placeholders
// start at $1. A campaign matches when its name matches the pattern or its
// channel is one of the given ids.
func campaignWhere(f *port.CampaignFilter) (string, []any) {
	if f == nil {
		return "", nil
	}
	if len(f.ChannelIDs) == 0 {
		return "WHERE c.name ~* $1", []any{f.NamePattern}
	}
	return "WHERE (c.name ~* $1 OR c.channel_id = ANY($2::uuid[]))", []any{f.NamePattern, f.ChannelIDs}
}

// buildCampaignListQuery renders one page of the campaign listing.
func buildCampaignListQuery(q port.CampaignQuery) (string, []any, error) {
	column, ok := campaignSortColumns[q.Sort]
	if !ok {
		return "", nil, errors.Newf("unsupported sort field %d", q.Sort)
	}
	direction, ok := sortDirections[q.Order]
	if !ok {
		return "", nil, errors.Newf("unsupported sort order %q", q.Order)
	}

	where, args := campaignWhere(q.Filter)
	var b strings.Builder
	b.WriteString("SELECT")
	b.WriteString(campaignColumns)
	b.WriteString("\n        FROM campaigns c\n        ")
	b.WriteString(campaignJoin)
	if where != "" {
		b.WriteString("\n        ")
		b.WriteString(where)
	}
	fmt.Fprintf(&b, "\n        ORDER BY %s %s\n        LIMIT $%d OFFSET $%d", column, direction, len(args)+1, len(args)+2)
	args = append(args, q.Limit, q.Offset)
	return b.String(), args, nil
}

// buildCampaignCountQuery counts campaigns matching the filter.
func buildCampaignCountQuery(f *port.CampaignFilter) (string, []any) {
	where, args := campaignWhere(f)
	query := "SELECT count(*) FROM campaigns c"
	if where != "" {
		query += " " + where
	}
	return query, args
}
