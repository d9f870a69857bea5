package importer

const fullTicketYAML = `
ticket:
  customer: Acme Builders
  job_site: 12 Main St
  scheduled_date: "2026-03-02"
dispatch:
  - type: CORE_DRILLING
    fields:
      locations: [Floor, Wall]
      holes:
        - quantity: 4
          diameter: '4"'
          depth: '8"'
      access: Ground Level
      water_control: true
  - type: SLAB_SAWING
    fields:
      cuts:
        - mode: linear
          linear_feet: 120
          thickness: '6"'
      slab_type: On Grade
work_performed:
  - type: CORE_DRILLING
    holes:
      - bit_size: '4"'
        depth_inches: 8
        quantity: 3
      - bit_size: '6"'
        depth_inches: 8
        quantity: 2
  - type: SLAB_SAWING
    cut_type: wet
    batch:
      kind: multicut
      blades: ['24"']
      entries:
        - {cuts: 3, length: 10, depth: 6}
        - {cuts: 2, length: 5, depth: 8}
  - type: BREAK_AND_REMOVE
    batch:
      kind: break-remove
      removal_method: Skid Steer
      entries:
        - {length: 10, width: 5}
        - {length: 4, width: 2}
`

func minimalFile() *TicketFile {
	return &TicketFile{
		Ticket:   TicketImport{Customer: "Acme Builders"},
		Dispatch: []DispatchImport{{Type: "GPR_SCANNING"}},
	}
}
