package codec

import (
	"errors"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/harborlab/portsim/cargo"
	"github.com/harborlab/portsim/port"
	"github.com/harborlab/portsim/ship"
)

const fullSnapshot = `Brisbane
5
2
BulkCargo:1:Australia:COAL:80
Container:2:France:STANDARD
2
BulkCarrier:1000000:Voyager:Australia:HOTEL:100:1
ContainerShip:1000001:Boxer:France:NOVEMBER:20:0:
2
BulkQuay:0:None:120
ContainerQuay:1:1000001:30
ShipQueue:1:1000000
StoredCargo:1:2
Movements:1
ShipMovement:6:OUTBOUND:1000001
Evaluators:2:ShipThroughputEvaluator,QuayOccupancyEvaluator
`

const minimumSnapshot = `PortName
0
0
0
0
ShipQueue:0:
StoredCargo:0:
Movements:0
Evaluators:0:
`

var _ = Describe("Port snapshot", func() {
	var (
		ships   *ship.Registry
		cargoes *cargo.Registry
	)

	BeforeEach(func() {
		ships = ship.NewRegistry()
		cargoes = cargo.NewRegistry()
	})

	decode := func(snapshot string) (*port.Port, error) {
		return DecodePort(strings.NewReader(snapshot), ships, cargoes)
	}

	It("should decode the minimum snapshot to an empty port", func() {
		p, err := DecodePort(strings.NewReader(minimumSnapshot), ships, cargoes)
		Expect(err).NotTo(HaveOccurred())

		Expect(p.Name()).To(Equal("PortName"))
		Expect(p.Time()).To(Equal(int64(0)))
		Expect(p.Quays()).To(BeEmpty())
		Expect(p.Cargo()).To(BeEmpty())
		Expect(p.ShipQueue().Len()).To(Equal(0))
		Expect(p.PendingMovements()).To(BeEmpty())
		Expect(p.Evaluators()).To(BeEmpty())
	})

	It("should decode a full snapshot", func() {
		p, err := DecodePort(strings.NewReader(fullSnapshot), ships, cargoes)
		Expect(err).NotTo(HaveOccurred())

		Expect(p.Name()).To(Equal("Brisbane"))
		Expect(p.Time()).To(Equal(int64(5)))
		Expect(ships.Len()).To(Equal(2))
		Expect(cargoes.Len()).To(Equal(2))

		quays := p.Quays()
		Expect(quays).To(HaveLen(2))
		Expect(quays[0].IsEmpty()).To(BeTrue())
		Expect(quays[1].Ship().IMONumber()).To(Equal(1000001))

		Expect(p.ShipQueue().Len()).To(Equal(1))
		Expect(p.ShipQueue().Ships()[0].IMONumber()).To(Equal(1000000))

		stored := p.Cargo()
		Expect(stored).To(HaveLen(1))
		Expect(stored[0].ID()).To(Equal(2))

		Expect(p.PendingMovements()).To(HaveLen(1))

		evaluators := p.Evaluators()
		Expect(evaluators).To(HaveLen(2))
		Expect(evaluators[0].Name()).To(Equal("ShipThroughputEvaluator"))
		Expect(evaluators[1].Name()).To(Equal("QuayOccupancyEvaluator"))
	})

	It("should re-encode a decoded snapshot byte for byte", func() {
		p, err := DecodePort(strings.NewReader(fullSnapshot), ships, cargoes)
		Expect(err).NotTo(HaveOccurred())

		var out strings.Builder
		Expect(EncodePort(&out, p, ships, cargoes)).To(Succeed())

		Expect(out.String()).To(Equal(fullSnapshot))
	})

	It("should advance deterministically from a fixed snapshot", func() {
		encodeAfter := func(minutes int) string {
			shipReg := ship.NewRegistry()
			cargoReg := cargo.NewRegistry()
			p, err := DecodePort(
				strings.NewReader(fullSnapshot), shipReg, cargoReg)
			Expect(err).NotTo(HaveOccurred())

			for i := 0; i < minutes; i++ {
				p.AdvanceOneMinute()
			}

			var out strings.Builder
			Expect(EncodePort(&out, p, shipReg, cargoReg)).To(Succeed())

			return out.String()
		}

		Expect(encodeAfter(20)).To(Equal(encodeAfter(20)))
	})

	It("should reject a ship queue whose count disagrees with its list", func() {
		_, err := decode(strings.Replace(minimumSnapshot,
			"ShipQueue:0:", "ShipQueue:0:1000009", 1))

		var decodeErr *DecodeError
		Expect(errors.As(err, &decodeErr)).To(BeTrue())
		Expect(decodeErr.Fragment).To(Equal("ShipQueue:0:1000009"))
	})

	It("should reject a ship queue referencing an unknown ship", func() {
		_, err := decode(strings.Replace(minimumSnapshot,
			"ShipQueue:0:", "ShipQueue:1:1000009", 1))

		var decodeErr *DecodeError
		Expect(errors.As(err, &decodeErr)).To(BeTrue())
	})

	It("should reject missing lines", func() {
		truncated := strings.TrimSuffix(minimumSnapshot, "Evaluators:0:\n")

		_, err := decode(truncated)

		var decodeErr *DecodeError
		Expect(errors.As(err, &decodeErr)).To(BeTrue())
	})

	It("should reject content after the final line", func() {
		_, err := decode(minimumSnapshot + "extra\n")

		var decodeErr *DecodeError
		Expect(errors.As(err, &decodeErr)).To(BeTrue())
		Expect(decodeErr.Fragment).To(Equal("extra"))
	})

	It("should reject an unknown evaluator kind", func() {
		_, err := decode(strings.Replace(minimumSnapshot,
			"Evaluators:0:", "Evaluators:1:WaveHeightEvaluator", 1))

		var decodeErr *DecodeError
		Expect(errors.As(err, &decodeErr)).To(BeTrue())
	})

	It("should reject a wrong section header", func() {
		_, err := decode(strings.Replace(minimumSnapshot,
			"StoredCargo:0:", "Warehouse:0:", 1))

		var decodeErr *DecodeError
		Expect(errors.As(err, &decodeErr)).To(BeTrue())
	})

	It("should reject an unparseable tick count", func() {
		_, err := decode(strings.Replace(minimumSnapshot, "\n0\n", "\nx\n", 1))

		var decodeErr *DecodeError
		Expect(errors.As(err, &decodeErr)).To(BeTrue())
	})
})
