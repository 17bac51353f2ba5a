// Package refdata holds the static reference tables of the RAGFIN1
// gateway: remittance providers, supported countries, exchange rates,
// and regulatory notes, plus the fixed-formula comparison and
// recommendation calculations built on them.
//
// All tables are hardcoded and read-only; accessors return fresh copies
// so callers can never corrupt the shared data.
package refdata
