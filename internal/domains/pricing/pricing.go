// Package pricing derives the rate type and nightly price for a booking line
// from preloaded reference data. Resolution is stateless and recomputed from
// scratch on every call.
package pricing

import (
	conventionModel "frontdesk/internal/domains/convention/model"
	ratecardModel "frontdesk/internal/domains/ratecard/model"
)

const (
	RateTypeSingola   = "Singola"
	RateTypeDoppia    = "Doppia"
	RateTypeTripla    = "Tripla"
	RateTypeQuadrupla = "Quadrupla"

	MinPax = 1
	MaxPax = 4
)

// RefData holds the reference rows pricing resolution reads. It is built once
// per request and never mutated afterwards.
type RefData struct {
	RateCards   map[string]ratecardModel.RateCard
	Conventions map[string]conventionModel.Convention
}

func NewRefData(rateCards []ratecardModel.RateCard, conventions []conventionModel.Convention) RefData {
	ref := RefData{
		RateCards:   make(map[string]ratecardModel.RateCard, len(rateCards)),
		Conventions: make(map[string]conventionModel.Convention, len(conventions)),
	}

	for _, rateCard := range rateCards {
		ref.RateCards[rateCard.RateType] = rateCard
	}

	for _, convention := range conventions {
		ref.Conventions[convention.ID] = convention
	}

	return ref
}

// Result is the resolved pricing for one booking line. ConventionID is empty
// when no convention applied.
type Result struct {
	RateType     string
	Price        float64
	ConventionID string
}

// ClampPax forces the guest count into the supported range.
func ClampPax(pax int) int {
	if pax < MinPax {
		return MinPax
	}

	if pax > MaxPax {
		return MaxPax
	}

	return pax
}

// RateTypeForPax maps a guest count to its rate type. Counts outside [1,4]
// are clamped first.
func RateTypeForPax(pax int) string {
	switch ClampPax(pax) {
	case 1:
		return RateTypeSingola
	case 2:
		return RateTypeDoppia
	case 3:
		return RateTypeTripla
	default:
		return RateTypeQuadrupla
	}
}

// Resolve derives the rate type and price for a booking line. A convention
// only applies when it exists, is active, and its rate type matches the one
// derived from pax; otherwise the convention reference is cleared and the
// rate card supplies the price, zero when no rate card row exists.
func Resolve(pax int, conventionID string, ref RefData) Result {
	rateType := RateTypeForPax(pax)

	if conventionID != "" {
		convention, ok := ref.Conventions[conventionID]
		if ok && convention.Active && convention.RateType == rateType {
			return Result{
				RateType:     rateType,
				Price:        convention.Price,
				ConventionID: conventionID,
			}
		}
	}

	price := 0.0
	if rateCard, ok := ref.RateCards[rateType]; ok {
		price = rateCard.Price
	}

	return Result{
		RateType: rateType,
		Price:    price,
	}
}
