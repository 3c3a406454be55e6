package metrics

// Metric name constants
const (
	MetricNameHTTPRequestsTotal   = "hivecore_http_requests_total"
	MetricNameHTTPRequestDuration = "hivecore_http_request_duration_seconds"

	MetricNameDrawsTotal         = "hivecore_draws_total"
	MetricNamePartsAwarded       = "hivecore_parts_awarded_total"
	MetricNamePartsSold          = "hivecore_parts_sold_total"
	MetricNameCreaturesAssembled = "hivecore_creatures_assembled_total"
	MetricNameListingsCreated    = "hivecore_listings_created_total"
	MetricNameTradesSettled      = "hivecore_trades_settled_total"
	MetricNameCoinsTraded        = "hivecore_coins_traded_total"
)

// Help text constants
const (
	HelpTextHTTPRequestsTotal   = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration = "HTTP request latency in seconds"

	HelpTextDrawsTotal         = "Total number of successful reward draws by rarity"
	HelpTextPartsAwarded       = "Total parts awarded by draws, by part kind"
	HelpTextPartsSold          = "Total parts sold for coins, by part kind"
	HelpTextCreaturesAssembled = "Total creatures assembled by rarity"
	HelpTextListingsCreated    = "Total market listings created"
	HelpTextTradesSettled      = "Total market purchases settled"
	HelpTextCoinsTraded        = "Total coins moved through market settlement"
)

// Label constants
const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelRarity = "rarity"
	LabelKind   = "kind"
)

// HTTPLatencyBuckets are the histogram buckets for request latency.
var HTTPLatencyBuckets = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5}
