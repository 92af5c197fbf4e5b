package catalog

// builtin is the shipped workout content. Entries are ordered; the variety
// selector excludes recently used names before picking.
var builtin = map[string][]Workout{
	CategoryEasy: {
		{Name: "Easy Run", Structure: "Conversational pace for the prescribed distance", Focus: "aerobic base"},
		{Name: "Easy Run + Strides", Structure: "Easy pace, finish with 4 x 20s strides", Focus: "aerobic base with turnover"},
		{Name: "Easy Trail Run", Structure: "Relaxed effort on soft or rolling terrain", Focus: "aerobic base, durability"},
	},
	CategoryLong: {
		{Name: "Long Run", Structure: "Steady comfortable pace for the full distance", Focus: "endurance"},
		{Name: "Long Run with Fast Finish", Structure: "Steady pace, final 2 miles at marathon effort", Focus: "endurance, late-race strength"},
		{Name: "Progression Long Run", Structure: "Start easy, drop 15s/mi every third of the run", Focus: "endurance, pacing discipline"},
	},
	CategoryTempo: {
		{Name: "Steady Tempo", Structure: "2 mi warmup, %d mi at tempo pace, 1 mi cooldown", Focus: "lactate threshold", Reps: &RepRange{Min: 2, Max: 5}},
		{Name: "Cruise Intervals", Structure: "2 mi warmup, %d x 1 mi at tempo with 60s jog, 1 mi cooldown", Focus: "lactate threshold", Reps: &RepRange{Min: 3, Max: 6}},
		{Name: "Tempo Sandwich", Structure: "2 mi warmup, 2 x 15 min at tempo with 5 min float, 1 mi cooldown", Focus: "threshold endurance"},
	},
	CategoryIntervals: {
		{Name: "800m Repeats", Structure: "2 mi warmup, %d x 800m at interval pace with 400m jog, 1 mi cooldown", Focus: "VO2max", Reps: &RepRange{Min: 4, Max: 8}},
		{Name: "1200m Repeats", Structure: "2 mi warmup, %d x 1200m at interval pace with 400m jog, 1 mi cooldown", Focus: "VO2max", Reps: &RepRange{Min: 3, Max: 6}},
		{Name: "400m Repeats", Structure: "2 mi warmup, %d x 400m at interval pace with 200m jog, 1 mi cooldown", Focus: "speed, economy", Reps: &RepRange{Min: 6, Max: 12}},
		{Name: "Ladder Session", Structure: "2 mi warmup, 400-800-1200-800-400 at interval pace with equal jog, 1 mi cooldown", Focus: "VO2max, pace change"},
	},
	CategoryHills: {
		{Name: "Hill Repeats", Structure: "2 mi warmup, %d x 60-90s hill at hard effort with jog-down recovery, 1 mi cooldown", Focus: "strength, power", Reps: &RepRange{Min: 4, Max: 10}},
		{Name: "Rolling Hills Run", Structure: "Steady effort over continuously rolling terrain", Focus: "strength endurance"},
	},
	CategoryRecovery: {
		{Name: "Recovery Jog", Structure: "Very easy shuffle, shorter than it feels like it should be", Focus: "active recovery"},
		{Name: "Recovery Run + Mobility", Structure: "Very easy run, finish with 10 min mobility work", Focus: "active recovery"},
	},
	CategoryBike: {
		{Name: "Endurance Ride", Structure: "Steady aerobic spin for the equivalent distance", Focus: "aerobic base, zero impact"},
		{Name: "Bike Tempo Blocks", Structure: "Warmup spin, 3 x 10 min at tempo effort with 5 min easy, cooldown", Focus: "threshold, zero impact"},
		{Name: "Cadence Ride", Structure: "Aerobic ride with 6 x 1 min high-cadence surges", Focus: "leg speed"},
	},
	CategoryPool: {
		{Name: "Pool Run", Structure: "Deep-water running, steady effort matching easy-run time", Focus: "aerobic, zero impact"},
		{Name: "Pool Intervals", Structure: "Deep-water running, 10 x 2 min hard with 1 min easy", Focus: "VO2max, zero impact"},
	},
	CategoryRowing: {
		{Name: "Steady Row", Structure: "Continuous moderate rowing matching easy-run time", Focus: "aerobic, full body"},
		{Name: "Row Intervals", Structure: "8 x 500m hard with 90s paddle recovery", Focus: "VO2max, full body"},
	},
	CategoryElliptic: {
		{Name: "Elliptical Aerobic", Structure: "Steady effort matching easy-run time", Focus: "aerobic, low impact"},
		{Name: "Elliptical Surges", Structure: "Aerobic effort with 8 x 90s strong surges", Focus: "intensity, low impact"},
	},

	// Equipment-specific quality work, keyed by running category + equipment.
	"tempo_bike": {
		{Name: "Bike Threshold Ride", Structure: "Warmup spin, 2 x 15 min at threshold effort with 5 min easy, cooldown", Focus: "lactate threshold"},
		{Name: "Sweet Spot Blocks", Structure: "Warmup spin, 3 x 12 min just below threshold with 4 min easy, cooldown", Focus: "threshold durability"},
	},
	"intervals_bike": {
		{Name: "Bike VO2 Intervals", Structure: "Warmup spin, 6 x 3 min hard with 3 min easy, cooldown", Focus: "VO2max"},
	},
	"hills_bike": {
		{Name: "Bike Hill Climbs", Structure: "Warmup spin, 6 x 3 min seated climb at strong effort, easy descent", Focus: "strength, power"},
	},
	"tempo_pool": {
		{Name: "Pool Tempo", Structure: "Deep-water running, 20 min continuous at hard-but-controlled effort", Focus: "lactate threshold, zero impact"},
	},
	"intervals_pool": {
		{Name: "Pool Hard Intervals", Structure: "Deep-water running, 12 x 90s hard with 45s easy", Focus: "VO2max, zero impact"},
	},
	"tempo_rowing": {
		{Name: "Row Tempo", Structure: "Warmup, 2 x 12 min at threshold stroke rate with 4 min paddle", Focus: "lactate threshold, full body"},
	},
	"intervals_rowing": {
		{Name: "Row Sprints", Structure: "Warmup, 10 x 250m sprint with 90s paddle", Focus: "power, full body"},
	},
	"tempo_elliptical": {
		{Name: "Elliptical Tempo", Structure: "Warmup, 20 min continuous at strong effort, cooldown", Focus: "lactate threshold, low impact"},
	},
	"intervals_elliptical": {
		{Name: "Elliptical Intervals", Structure: "Warmup, 8 x 2 min hard with 2 min easy, cooldown", Focus: "VO2max, low impact"},
	},
	"hills_elliptical": {
		{Name: "Elliptical Climb Session", Structure: "Warmup, 6 x 3 min at max incline with 2 min flat, cooldown", Focus: "strength, low impact"},
	},
}
