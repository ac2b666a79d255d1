// Package events lets the journal announce what happened without knowing who
// is listening. Services emit a JournalEvent after each successful mutation;
// metrics and audit logging subscribe as handlers.
//
// The primary components are:
// - JournalEvent: a record of one change to a session's journal
// - EventHandler: interface for components that react to events
// - EventEmitter: interface for components that publish events
package events
