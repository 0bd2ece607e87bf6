package extractor

// extractionPrompt instructs the model to emit the fixed JSON shape the
// validator expects. Keep the shape here and the payload structs in
// client.go in sync.
const extractionPrompt = `You convert cycling club result pages from HTML to JSON.

The page lists one or more events. Each event has a date, a name, a route
distance in kilometres, and a table of rider results. Respond with JSON
only, exactly this shape:

{
  "events": [
    {
      "date": "YYYY-MM-DD",
      "name": "event name as printed",
      "distance": 200,
      "riders": [
        {
          "name": "full name as printed",
          "firstName": "given name",
          "lastName": "family name",
          "time": "H:MM or null when absent",
          "status": "finished, dnf, dns, or null when not printed"
        }
      ]
    }
  ]
}

Rules:
- Copy names exactly as printed, including accents.
- Distances are numbers, not strings.
- Do not invent riders, times, or statuses that are not on the page.
- Emit an empty riders array for an event with no result table.`
