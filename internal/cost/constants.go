package cost

// Per-year and flat dollar constants used by the cost formulas.
const (
	// Feeder college tuition per year.
	feederInStatePerYear    = 3400.0
	feederOutOfStatePerYear = 12000.0

	// Books run flat per academic year at every institution.
	booksPerYear = 1200.0

	// Fee fraction of the tuition component by degree level.
	bachelorFeeRate = 0.12
	masterFeeRate   = 0.10

	// Graduate tuition runs above the undergraduate rate.
	masterTuitionPremium = 1.2

	// Funded doctorates pay no tuition; a fraction of living costs plus
	// research expenses stay out of pocket.
	doctorateLivingFraction = 0.3
	doctorateResearchFee    = 3000.0
	doctorateConferenceFee  = 2000.0

	// Accelerated study adds summer terms.
	acceleratedPremium = 1.15

	// Flat add-on per required credential.
	certificationFee = 200.0
	licenseFee       = 300.0

	// Last-resort tuition when no source resolves a rate.
	genericInStateTuition    = 8000.0
	genericOutOfStateTuition = 20000.0

	// Floor applied to seed fallback rates.
	tuitionFloor = 1000.0

	monthsPerYear = 12
)
