// Package appinfo resolves an app identifier, acquires its storefront
// and/or SteamDB documents with source-level fallback, and assembles
// the merged metadata record.
package appinfo

import (
	"context"
	"errors"
	"fmt"

	"github.com/mtlaird/steam-db/internal/httpdoc"
	"github.com/mtlaird/steam-db/internal/steamdb"
	"github.com/mtlaird/steam-db/internal/store"
	"github.com/mtlaird/steam-db/internal/ui"
	"github.com/sirupsen/logrus"
)

// Source selects which pages to acquire.
type Source string

const (
	SourceStore   Source = "store"
	SourceSteamDB Source = "steamdb"
	SourceBoth    Source = "both"
)

// Reason classifies why an acquisition yielded no documents.
type Reason int

const (
	ReasonNone Reason = iota
	ReasonNotCataloged
	ReasonAgeCheckFailed
	ReasonAppIDUnresolved
)

func (r Reason) String() string {
	switch r {
	case ReasonNotCataloged:
		return "app not on the storefront and not in the SteamDB catalog"
	case ReasonAgeCheckFailed:
		return "storefront age check failed"
	case ReasonAppIDUnresolved:
		return "app ID could not be resolved"
	default:
		return "resolved"
	}
}

// Request identifies the app to acquire, by explicit ID or by search
// term, and which source pages to fetch.
type Request struct {
	AppID      string
	SearchTerm string
	Source     Source
}

// Outcome is the result of one acquisition. Exactly one of the two
// states holds: Reason == ReasonNone with at least one document set,
// or a non-zero Reason with no documents.
type Outcome struct {
	AppID    string
	StoreDoc *httpdoc.Document
	DBDoc    *httpdoc.Document
	Reason   Reason
}

// Resolved reports whether the acquisition yielded a document set.
func (o *Outcome) Resolved() bool { return o.Reason == ReasonNone }

// ActiveSource reports which documents the outcome carries.
func (o *Outcome) ActiveSource() Source {
	switch {
	case o.StoreDoc != nil && o.DBDoc != nil:
		return SourceBoth
	case o.DBDoc != nil:
		return SourceSteamDB
	default:
		return SourceStore
	}
}

// Acquire resolves the request's app ID and fetches its document set.
//
// Classified obstacles (delisted, not in catalog, failed age check,
// unresolvable ID) land in the Outcome's Reason; an error return means
// the network-level fetch itself failed.
//
// Fallback is source-level: a storefront delisting forces the SteamDB
// fetch even when only the storefront was requested. A failed age
// check is terminal; SteamDB is not attempted after it.
func Acquire(ctx context.Context, f httpdoc.Fetcher, req Request) (*Outcome, error) {
	if req.Source == "" {
		req.Source = SourceBoth
	}

	appID := req.AppID
	if appID == "" {
		if req.SearchTerm == "" {
			return &Outcome{Reason: ReasonAppIDUnresolved}, nil
		}
		ui.Progress(ctx, fmt.Sprintf("Searching store for %q...", req.SearchTerm))
		resolved, err := store.ResolveAppID(ctx, f, req.SearchTerm)
		if errors.Is(err, store.ErrAppIDUnresolved) {
			return &Outcome{Reason: ReasonAppIDUnresolved}, nil
		}
		if err != nil {
			return nil, err
		}
		logrus.Debugf("resolved search term %q to app %s", req.SearchTerm, resolved)
		appID = resolved
	}

	out := &Outcome{AppID: appID}
	storeDelisted := false

	if req.Source != SourceSteamDB {
		ui.Progress(ctx, "Fetching storefront page...")
		doc, err := store.FetchAppPage(ctx, f, appID)
		switch {
		case err == nil:
			out.StoreDoc = doc
		case errors.Is(err, store.ErrNotOnStore):
			logrus.Debugf("app %s delisted from storefront, falling back to SteamDB", appID)
			ui.Progress(ctx, "App delisted from store, trying SteamDB...")
			storeDelisted = true
		case errors.Is(err, store.ErrAgeCheckRequired):
			ui.Progress(ctx, "Age gate hit, submitting confirmation...")
			doc, err := store.ConfirmAgeCheck(ctx, f, appID)
			if errors.Is(err, store.ErrAgeCheckFailed) {
				out.Reason = ReasonAgeCheckFailed
				return out, nil
			}
			if err != nil {
				return nil, err
			}
			out.StoreDoc = doc
		default:
			return nil, err
		}
	}

	if req.Source != SourceStore || storeDelisted {
		ui.Progress(ctx, "Fetching SteamDB page...")
		doc, err := steamdb.FetchAppPage(ctx, f, appID)
		switch {
		case err == nil:
			out.DBDoc = doc
		case errors.Is(err, steamdb.ErrAppNotFound):
			logrus.Debugf("app %s not in SteamDB catalog", appID)
			if out.StoreDoc == nil {
				if storeDelisted {
					out.Reason = ReasonNotCataloged
				} else {
					out.Reason = ReasonAppIDUnresolved
				}
				return out, nil
			}
			// Storefront document alone still resolves.
		default:
			return nil, err
		}
	}

	if out.StoreDoc == nil && out.DBDoc == nil {
		out.Reason = ReasonNotCataloged
	}
	return out, nil
}
