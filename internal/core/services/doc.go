// Package services implements the driving ports: ingestion, question
// answering, document management, and settings. Services hold no state of
// their own; everything is delegated to the driven ports injected at
// construction.
package services
