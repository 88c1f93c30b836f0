package check

// Ping probe classifications.
const (
	PingUp          = "UP"
	PingDown        = "DOWN"
	PingBadHostname = "BADHOSTNAME"
)

// Port probe classifications.
const (
	PortSucceeded = "SUCCEEDED"
	PortRefused   = "REFUSED"
	PortTimeout   = "TIMEOUT"
)

// AgentUnavailable is reported when the agent utility produces no
// status token for a host.
const AgentUnavailable = "HOST UNAVAILABLE"

// HostReport holds the outcome of all probes for a single host.
// Fields are either parsed values or the sentinel strings above;
// a report is written once and never mutated afterwards.
type HostReport struct {
	Server       string // host name as given on the command line or in the list file
	Ping         string // UP, DOWN or BADHOSTNAME
	FQDN         string // canonical name, empty if resolution failed
	IP           string // first resolved address, empty if resolution failed
	Port         string // SUCCEEDED, REFUSED or TIMEOUT
	AgentStatus  string // status token from the agent utility, or AgentUnavailable
	AgentVersion string // appV token from the agent utility, empty if absent
	Outdated     bool   // agent version is below the configured minimum
}
