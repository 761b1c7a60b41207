// Package metrics defines and registers all custom Prometheus metrics for the
// developer-network API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register with the default Prometheus registry at package init; the
// router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "devconnector"

// UsersRegisteredTotal counts successful account registrations.
var UsersRegisteredTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_registered_total",
		Help:      "Total number of accounts registered.",
	},
)

// ProfileUpdatesTotal counts profile upserts.
// Label:
//   - action: "created" (first upsert for a user) or "updated" (merge-update)
var ProfileUpdatesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "profile_updates_total",
		Help:      "Total number of profile upserts, by action (created/updated).",
	},
	[]string{"action"},
)

// PostsCreatedTotal counts newly created posts.
var PostsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "posts_created_total",
		Help:      "Total number of posts created.",
	},
)

// PostLikesTotal counts like/unlike mutations that succeeded.
// Label:
//   - action: "like" or "unlike"
var PostLikesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "post_likes_total",
		Help:      "Total number of successful like and unlike operations.",
	},
	[]string{"action"},
)

// GithubCacheTotal counts GitHub repos proxy cache decisions.
// Label:
//   - result: "hit" (served from Redis) or "miss" (fetched upstream)
var GithubCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "github_cache_total",
		Help:      "Total number of GitHub repos cache lookups, by result (hit/miss).",
	},
	[]string{"result"},
)
