package cachestore

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var cacheHits = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "tweetkit_cachestore_hits",
	Help: "Cache store lookups that found an entry",
}, []string{"store"})

var cacheMisses = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "tweetkit_cachestore_misses",
	Help: "Cache store lookups that found no entry",
}, []string{"store"})

var cacheWrites = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "tweetkit_cachestore_writes",
	Help: "Cache store writes",
}, []string{"store"})
