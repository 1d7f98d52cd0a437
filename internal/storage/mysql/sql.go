package mysql

// One row per generated itinerary; the payload is the full JSON document.
// Ids are assigned by the planner at creation, so inserts never collide and
// an upsert would only mask a bug.
const insertItinerarySQL = `
INSERT INTO itineraries (id, destination, payload, created_at)
VALUES (?, ?, ?, ?)
`

const getItinerarySQL = `
SELECT payload
FROM itineraries
WHERE id = ?
`
