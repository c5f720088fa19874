package functions

import "strings"

// RegionAny leaves region selection to the relay; no x-region header is
// sent.
const RegionAny = "any"

// Regions an edge function invocation can be pinned to.
const (
	RegionApNortheast1 = "ap-northeast-1"
	RegionApNortheast2 = "ap-northeast-2"
	RegionApSouth1     = "ap-south-1"
	RegionApSoutheast1 = "ap-southeast-1"
	RegionApSoutheast2 = "ap-southeast-2"
	RegionCaCentral1   = "ca-central-1"
	RegionEuCentral1   = "eu-central-1"
	RegionEuWest1      = "eu-west-1"
	RegionEuWest2      = "eu-west-2"
	RegionEuWest3      = "eu-west-3"
	RegionSaEast1      = "sa-east-1"
	RegionUsEast1      = "us-east-1"
	RegionUsWest1      = "us-west-1"
	RegionUsWest2      = "us-west-2"
)

func normalizeRegion(region string) string {
	return strings.ToLower(strings.TrimSpace(region))
}
