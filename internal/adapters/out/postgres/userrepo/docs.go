// Package userrepo reads the user directory: the users table mapping actor
// ids to emails, names and roles.
//
// The order service only reads this table. Accounts are owned by the identity
// provider in front of the gateway, which is expected to write the rows; until
// it has, buyer emails stay unresolved, orders are created without a buyer id
// and status notifications are skipped. Save exists for that provisioning
// side and for seeding environments by hand.
package userrepo
