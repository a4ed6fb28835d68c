// Package claim provides the Claim aggregate recording post-purchase disputes
// raised by buyers against their orders. Claims carry their own review status
// enum and are fully independent of order and delivery lifecycles.
package claim
