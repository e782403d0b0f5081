// Package networth holds the client side model of a personal net-worth
// tracker: assets and debts as served by the finance REST service, the
// aggregates it computes, and the pure functions used to display them.
//
// The service owns every record. This package never assigns identifiers and
// keeps no state: values are decoded from the service, displayed, and
// discarded at the next refresh.
//
// The main parts are:
//   - Model: [Asset], [Debt], [AssetHistory], [NetWorth], [Summary] and the
//     create/update payloads ([AssetDraft], [AssetPatch], [DebtDraft], [DebtPatch]).
//   - Values: [Amount], a decimal written as a JSON number, and [Date], a
//     calendar day.
//   - Formatting: [FormatCurrency], [FormatDate], [FormatDateForInput],
//     [TypeLabel] and [BadgeClass].
//
// The api package talks to the service, the view package renders pages and
// the manage package drives the create/edit forms. They are assembled by the
// `nw` command-line tool.
package networth
