package booking

import "math"

// CurrencyEGP is the only currency the service quotes in. Prices are whole
// Egyptian pounds; there is no fractional-unit handling.
const CurrencyEGP = "EGP"

// Quote is the output of the pricing engine, handed to the payment
// collaborator together with a caller-minted order identifier.
type Quote struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

// PricingTable is the static price configuration. Loaded once, never
// mutated at runtime.
type PricingTable struct {
	TelemedicineFee int64
	DoctorVisitFee  int64

	// The twelve-session bundle is priced independently of the single
	// session fee; the discount is baked into the table, not computed.
	PhysioSessionFee int64
	PhysioBundleFee  int64

	NursingBaseRates       map[NursingType]int64
	NursingHourMultipliers map[NursingHours]int64
	NursingDurationFactors map[NursingDuration]float64

	PackageFees map[PackageType]int64
}

// DefaultPricingTable returns the current Anees Health price list in EGP.
func DefaultPricingTable() PricingTable {
	return PricingTable{
		TelemedicineFee:  250,
		DoctorVisitFee:   600,
		PhysioSessionFee: 900,
		PhysioBundleFee:  9500,
		NursingBaseRates: map[NursingType]int64{
			NursingNurse:     150,
			NursingAssistant: 100,
		},
		NursingHourMultipliers: map[NursingHours]int64{
			Hours8:  8,
			Hours12: 12,
			Hours24: 24,
		},
		NursingDurationFactors: map[NursingDuration]float64{
			Duration1Week:  1.0,
			Duration2Weeks: 0.95,
			Duration1Month: 0.85,
		},
		PackageFees: map[PackageType]int64{
			PackageHaraka: 2500,
			PackageWai:    3000,
			PackageAmal:   4500,
		},
	}
}

// Calculate returns the deterministic price in whole EGP for the selection.
// It never fails: missing sub-fields contribute zero, so an incomplete
// selection prices at or near 0. Callers must run Validate first and refuse
// to act on a zero price; the doctor-visit fee is flat regardless of
// specialty, date or time preference.
func Calculate(sel BookingSelection, table PricingTable) int64 {
	var price int64

	switch sel.VisitType {
	case VisitTypeTelemedicine:
		price = table.TelemedicineFee

	case VisitTypePackage:
		if sel.Package != nil {
			price = table.PackageFees[sel.Package.PackageType]
		}

	case VisitTypeHomeVisit:
		price = calculateHomeVisit(sel.HomeVisit, table)
	}

	if price < 0 {
		return 0
	}
	return price
}

func calculateHomeVisit(hv *HomeVisitSelection, table PricingTable) int64 {
	if hv == nil {
		return 0
	}

	switch hv.ServiceType {
	case ServiceTypeDoctorVisit:
		return table.DoctorVisitFee

	case ServiceTypePhysiotherapy:
		if hv.Physiotherapy == nil {
			return 0
		}
		switch hv.Physiotherapy.SessionCount {
		case SessionSingle:
			return table.PhysioSessionFee
		case SessionBundle:
			return table.PhysioBundleFee
		}
		return 0

	case ServiceTypeNursing:
		if hv.Nursing == nil {
			return 0
		}
		rate := table.NursingBaseRates[hv.Nursing.NursingType]
		hours := table.NursingHourMultipliers[hv.Nursing.HoursPerDay]
		factor, ok := table.NursingDurationFactors[hv.Nursing.Duration]
		if !ok {
			return 0
		}
		// The duration factor is a flat discount applied once to the full
		// rate-times-hours product, not compounded per day.
		return int64(math.Round(float64(rate*hours) * factor))
	}

	return 0
}
