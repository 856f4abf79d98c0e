package codec

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/harborlab/portsim/cargo"
	"github.com/harborlab/portsim/port"
	"github.com/harborlab/portsim/ship"
	"github.com/harborlab/portsim/stats"
)

const (
	shipQueuePrefix   = "ShipQueue"
	storedCargoPrefix = "StoredCargo"
	movementsPrefix   = "Movements"
	evaluatorsPrefix  = "Evaluators"
)

// EncodePort writes the full snapshot of a port. Cargo and ships come from
// the given registries in creation order; quays, the admission queue, the
// warehouse and pending movements come from the port itself.
func EncodePort(
	w io.Writer,
	p *port.Port,
	ships *ship.Registry,
	cargoes *cargo.Registry,
) error {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n%d\n", p.Name(), p.Time())

	allCargo := cargoes.All()
	fmt.Fprintf(&b, "%d\n", len(allCargo))
	for _, item := range allCargo {
		b.WriteString(EncodeCargo(item))
		b.WriteByte('\n')
	}

	allShips := ships.All()
	fmt.Fprintf(&b, "%d\n", len(allShips))
	for _, vessel := range allShips {
		b.WriteString(EncodeShip(vessel))
		b.WriteByte('\n')
	}

	quays := p.Quays()
	fmt.Fprintf(&b, "%d\n", len(quays))
	for _, quay := range quays {
		b.WriteString(EncodeQuay(quay))
		b.WriteByte('\n')
	}

	queued := p.ShipQueue().Ships()
	imoNumbers := make([]int, 0, len(queued))
	for _, vessel := range queued {
		imoNumbers = append(imoNumbers, vessel.IMONumber())
	}
	fmt.Fprintf(&b, "%s:%d:%s\n",
		shipQueuePrefix, len(imoNumbers), joinIDs(imoNumbers))

	stored := p.Cargo()
	cargoIDs := make([]int, 0, len(stored))
	for _, item := range stored {
		cargoIDs = append(cargoIDs, item.ID())
	}
	fmt.Fprintf(&b, "%s:%d:%s\n",
		storedCargoPrefix, len(cargoIDs), joinIDs(cargoIDs))

	movements := p.PendingMovements()
	fmt.Fprintf(&b, "%s:%d\n", movementsPrefix, len(movements))
	for _, m := range movements {
		b.WriteString(EncodeMovement(m))
		b.WriteByte('\n')
	}

	evaluators := p.Evaluators()
	names := make([]string, 0, len(evaluators))
	for _, evaluator := range evaluators {
		names = append(names, evaluator.Name())
	}
	fmt.Fprintf(&b, "%s:%d:%s\n",
		evaluatorsPrefix, len(names), strings.Join(names, ","))

	_, err := io.WriteString(w, b.String())

	return err
}

// DecodePort reads a full snapshot, registering decoded cargo and ships with
// the given registries. Any deviation from the snapshot structure, including
// content after the final line, is a decode error.
func DecodePort(
	r io.Reader,
	ships *ship.Registry,
	cargoes *cargo.Registry,
) (*port.Port, error) {
	lines := bufio.NewScanner(r)

	name, err := nextLine(lines)
	if err != nil {
		return nil, err
	}

	timeLine, err := nextLine(lines)
	if err != nil {
		return nil, err
	}
	time, err := parseInt64(timeLine, timeLine)
	if err != nil {
		return nil, err
	}

	if err := decodeEntities(lines, "cargo", func(line string) error {
		_, err := ParseCargo(line, cargoes)
		return err
	}); err != nil {
		return nil, err
	}

	if err := decodeEntities(lines, "ship", func(line string) error {
		_, err := ParseShip(line, ships, cargoes)
		return err
	}); err != nil {
		return nil, err
	}

	var quays []port.Quay
	if err := decodeEntities(lines, "quay", func(line string) error {
		quay, err := ParseQuay(line, ships)
		if err != nil {
			return err
		}
		quays = append(quays, quay)
		return nil
	}); err != nil {
		return nil, err
	}

	queue, err := decodeShipQueue(lines, ships)
	if err != nil {
		return nil, err
	}

	stored, err := decodeStoredCargo(lines, cargoes)
	if err != nil {
		return nil, err
	}

	p, err := port.NewWithState(name, time, queue, quays, stored)
	if err != nil {
		return nil, wrapDecodeError(timeLine, err)
	}

	if err := decodeMovements(lines, p, ships, cargoes); err != nil {
		return nil, err
	}

	if err := decodeEvaluators(lines, p); err != nil {
		return nil, err
	}

	if lines.Scan() {
		return nil, decodeErrorf(lines.Text(), "content after final line")
	}
	if err := lines.Err(); err != nil {
		return nil, wrapDecodeError("", err)
	}

	return p, nil
}

func nextLine(lines *bufio.Scanner) (string, error) {
	if !lines.Scan() {
		if err := lines.Err(); err != nil {
			return "", wrapDecodeError("", err)
		}

		return "", decodeErrorf("", "unexpected end of input")
	}

	return lines.Text(), nil
}

// decodeEntities reads a bare count line followed by that many entity lines.
func decodeEntities(
	lines *bufio.Scanner,
	what string,
	parse func(line string) error,
) error {
	countLine, err := nextLine(lines)
	if err != nil {
		return err
	}

	count, err := parseInt(countLine, countLine)
	if err != nil {
		return err
	}
	if count < 0 {
		return decodeErrorf(countLine, "negative %s count", what)
	}

	for i := 0; i < count; i++ {
		line, err := nextLine(lines)
		if err != nil {
			return err
		}

		if err := parse(line); err != nil {
			return err
		}
	}

	return nil
}

// splitHeader validates a "<Prefix>:<count>:<list>" line and returns the
// count and the list field.
func splitHeader(line, prefix string) (int, string, error) {
	fields, err := splitFields(line, 3)
	if err != nil {
		return 0, "", err
	}

	if fields[0] != prefix {
		return 0, "", decodeErrorf(line, "expected %q header", prefix)
	}

	count, err := parseInt(line, fields[1])
	if err != nil {
		return 0, "", err
	}
	if count < 0 {
		return 0, "", decodeErrorf(line, "negative count")
	}

	return count, fields[2], nil
}

func decodeShipQueue(
	lines *bufio.Scanner,
	ships *ship.Registry,
) (*port.ShipQueue, error) {
	line, err := nextLine(lines)
	if err != nil {
		return nil, err
	}

	count, listField, err := splitHeader(line, shipQueuePrefix)
	if err != nil {
		return nil, err
	}

	ids, err := parseIDList(line, listField, count)
	if err != nil {
		return nil, err
	}

	queue := port.NewShipQueue()
	for _, id := range ids {
		vessel, err := ships.Lookup(id)
		if err != nil {
			return nil, wrapDecodeError(line, err)
		}
		queue.Add(vessel)
	}

	return queue, nil
}

func decodeStoredCargo(
	lines *bufio.Scanner,
	cargoes *cargo.Registry,
) ([]cargo.Cargo, error) {
	line, err := nextLine(lines)
	if err != nil {
		return nil, err
	}

	count, listField, err := splitHeader(line, storedCargoPrefix)
	if err != nil {
		return nil, err
	}

	ids, err := parseIDList(line, listField, count)
	if err != nil {
		return nil, err
	}

	stored := make([]cargo.Cargo, 0, len(ids))
	for _, id := range ids {
		item, err := cargoes.Lookup(id)
		if err != nil {
			return nil, wrapDecodeError(line, err)
		}
		stored = append(stored, item)
	}

	return stored, nil
}

func decodeMovements(
	lines *bufio.Scanner,
	p *port.Port,
	ships *ship.Registry,
	cargoes *cargo.Registry,
) error {
	line, err := nextLine(lines)
	if err != nil {
		return err
	}

	fields, err := splitFields(line, 2)
	if err != nil {
		return err
	}
	if fields[0] != movementsPrefix {
		return decodeErrorf(line, "expected %q header", movementsPrefix)
	}

	count, err := parseInt(line, fields[1])
	if err != nil {
		return err
	}
	if count < 0 {
		return decodeErrorf(line, "negative movement count")
	}

	for i := 0; i < count; i++ {
		movementLine, err := nextLine(lines)
		if err != nil {
			return err
		}

		m, err := ParseMovement(movementLine, ships, cargoes)
		if err != nil {
			return err
		}

		if err := p.AddMovement(m); err != nil {
			return wrapDecodeError(movementLine, err)
		}
	}

	return nil
}

func decodeEvaluators(lines *bufio.Scanner, p *port.Port) error {
	line, err := nextLine(lines)
	if err != nil {
		return err
	}

	count, listField, err := splitHeader(line, evaluatorsPrefix)
	if err != nil {
		return err
	}

	names, err := parseTokenList(line, listField, count)
	if err != nil {
		return err
	}

	for _, name := range names {
		evaluator, err := newEvaluator(name, p)
		if err != nil {
			return wrapDecodeError(line, err)
		}
		p.AddStatisticsEvaluator(evaluator)
	}

	return nil
}

func newEvaluator(name string, p *port.Port) (stats.StatisticsEvaluator, error) {
	switch name {
	case "ShipThroughputEvaluator":
		return stats.NewShipThroughputEvaluator(), nil

	case "CargoDecompositionEvaluator":
		return stats.NewCargoDecompositionEvaluator(), nil

	case "QuayOccupancyEvaluator":
		return stats.NewQuayOccupancyEvaluator(p), nil

	case "ShipFlagEvaluator":
		return stats.NewShipFlagEvaluator(), nil

	default:
		return nil, fmt.Errorf("unknown evaluator kind %q", name)
	}
}
