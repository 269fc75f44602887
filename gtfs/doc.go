/*
Package gtfs parses the LPP bus feed and aggregates scheduled arrivals per stop.

The package is data-source agnostic: parsers take the raw text of stops.txt
and stop_times.txt. ReadFeedFiles pulls those tables out of a GTFS zip held
in memory; it does not fetch anything.

# Basic Usage

	files, err := gtfs.ReadFeedFilesFromPath("LPP_2024-05-09_feed.zip", "stops.txt", "stop_times.txt")
	if err != nil {
	    log.Fatal(err)
	}

	stops, err := gtfs.ParseBusStops(string(files["stops.txt"]))
	arrivals, err := gtfs.ParseBusArrivals(string(files["stop_times.txt"]),
	    gtfs.ServiceDayMarker(gtfs.DefaultServiceDayMarker))

	withStats, err := gtfs.MergeArrivals(stops, arrivals)

# Service day

stop_times.txt covers every service day in the feed. Trip ids of the LPP feed
embed a service identifier, so a single day is selected by keeping only trips
whose id contains that identifier. The filter is a TripFilter and may be
replaced; DefaultServiceDayMarker selects 2024-05-08.

# Hours

Hours go through two shifts, see hourshift.go. Both are kept so the output
matches the published visualization data.
*/
package gtfs
