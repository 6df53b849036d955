// Package planner hosts the backend service that owns wedding-planning
// records: organizations, planner accounts, clients, hotel room blocks,
// guest gifts, and SMS communication logs.
//
// The dashboard never touches this data directly; it consumes the JSON API
// exposed under api/httpapi through typed clients.
package planner
