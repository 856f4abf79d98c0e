package ship

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/harborlab/portsim/cargo"
	"github.com/harborlab/portsim/registry"
)

// stubBulkBerth fakes the quay-side view of a bulk quay.
type stubBulkBerth struct {
	id         int
	maxTonnage int
}

func (b stubBulkBerth) ID() int         { return b.id }
func (b stubBulkBerth) MaxTonnage() int { return b.maxTonnage }

// stubContainerBerth fakes the quay-side view of a container quay.
type stubContainerBerth struct {
	id            int
	maxContainers int
}

func (b stubContainerBerth) ID() int            { return b.id }
func (b stubContainerBerth) MaxContainers() int { return b.maxContainers }

var _ = Describe("BulkCarrier", func() {
	var (
		ships    *Registry
		cargoes  *cargo.Registry
		carrier  *BulkCarrier
		bulkLoad *cargo.BulkCargo
	)

	BeforeEach(func() {
		ships = NewRegistry()
		cargoes = cargo.NewRegistry()

		var err error
		carrier, err = NewBulkCarrier(
			ships, 1234567, "Evergreen", "Australia", FlagBravo, 120)
		Expect(err).NotTo(HaveOccurred())

		bulkLoad, err = cargo.NewBulkCargo(cargoes, 1, "Australia", 100, cargo.Oil)
		Expect(err).NotTo(HaveOccurred())
	})

	It("should register itself under its IMO number", func() {
		registered, err := ships.Lookup(1234567)
		Expect(err).NotTo(HaveOccurred())
		Expect(registered).To(BeIdenticalTo(carrier))
	})

	It("should reject IMO numbers outside the 7-digit range", func() {
		_, err := NewBulkCarrier(ships, 999999, "Tiny", "Fiji", FlagNovember, 10)
		Expect(err).To(HaveOccurred())

		_, err = NewBulkCarrier(ships, 10000000, "Huge", "Fiji", FlagNovember, 10)
		Expect(err).To(HaveOccurred())
	})

	It("should reject duplicate IMO numbers until the registry resets", func() {
		_, err := NewBulkCarrier(
			ships, 1234567, "Twin", "Australia", FlagNovember, 50)
		Expect(errors.Is(err, registry.ErrDuplicateID)).To(BeTrue())

		ships.Reset()

		_, err = NewBulkCarrier(
			ships, 1234567, "Twin", "Australia", FlagNovember, 50)
		Expect(err).NotTo(HaveOccurred())
	})

	It("should reject a negative capacity", func() {
		_, err := NewBulkCarrier(ships, 7654321, "Neg", "Fiji", FlagNovember, -1)
		Expect(err).To(HaveOccurred())
	})

	Describe("CanDock", func() {
		It("should dock empty at any bulk berth", func() {
			Expect(carrier.CanDock(stubBulkBerth{id: 1, maxTonnage: 0})).
				To(BeTrue())
		})

		It("should refuse container berths", func() {
			Expect(carrier.CanDock(stubContainerBerth{id: 1, maxContainers: 99})).
				To(BeFalse())
		})

		It("should respect the berth tonnage when loaded", func() {
			Expect(carrier.LoadCargo(bulkLoad)).To(Succeed())

			Expect(carrier.CanDock(stubBulkBerth{id: 1, maxTonnage: 99})).
				To(BeFalse())
			Expect(carrier.CanDock(stubBulkBerth{id: 1, maxTonnage: 100})).
				To(BeTrue())
		})
	})

	Describe("CanLoad", func() {
		It("should load matching bulk cargo", func() {
			Expect(carrier.CanLoad(bulkLoad)).To(BeTrue())
		})

		It("should refuse cargo bound elsewhere", func() {
			other, err := cargo.NewBulkCargo(cargoes, 2, "France", 10, cargo.Grain)
			Expect(err).NotTo(HaveOccurred())
			Expect(carrier.CanLoad(other)).To(BeFalse())
		})

		It("should refuse cargo above capacity", func() {
			heavy, err := cargo.NewBulkCargo(
				cargoes, 2, "Australia", 121, cargo.Coal)
			Expect(err).NotTo(HaveOccurred())
			Expect(carrier.CanLoad(heavy)).To(BeFalse())
		})

		It("should refuse containers", func() {
			box, err := cargo.NewContainer(
				cargoes, 2, "Australia", cargo.Standard)
			Expect(err).NotTo(HaveOccurred())
			Expect(carrier.CanLoad(box)).To(BeFalse())
		})

		It("should refuse a second load", func() {
			Expect(carrier.LoadCargo(bulkLoad)).To(Succeed())

			second, err := cargo.NewBulkCargo(
				cargoes, 2, "Australia", 1, cargo.Grain)
			Expect(err).NotTo(HaveOccurred())
			Expect(carrier.CanLoad(second)).To(BeFalse())
			Expect(carrier.LoadCargo(second)).NotTo(Succeed())
		})
	})

	Describe("UnloadCargo", func() {
		It("should return the carried cargo and empty the ship", func() {
			Expect(carrier.LoadCargo(bulkLoad)).To(Succeed())

			unloaded, err := carrier.UnloadCargo()
			Expect(err).NotTo(HaveOccurred())
			Expect(unloaded).To(BeIdenticalTo(bulkLoad))
			Expect(carrier.Cargo()).To(BeNil())
		})

		It("should fail on an empty ship", func() {
			_, err := carrier.UnloadCargo()
			Expect(errors.Is(err, ErrNoCargo)).To(BeTrue())
		})
	})
})

var _ = Describe("ContainerShip", func() {
	var (
		ships   *Registry
		cargoes *cargo.Registry
		vessel  *ContainerShip
	)

	newBox := func(id int, destination string) *cargo.Container {
		box, err := cargo.NewContainer(cargoes, id, destination, cargo.Standard)
		Expect(err).NotTo(HaveOccurred())
		return box
	}

	BeforeEach(func() {
		ships = NewRegistry()
		cargoes = cargo.NewRegistry()

		var err error
		vessel, err = NewContainerShip(
			ships, 7654321, "Atlas", "Singapore", FlagHotel, 2)
		Expect(err).NotTo(HaveOccurred())
	})

	It("should load containers up to its capacity", func() {
		Expect(vessel.LoadCargo(newBox(1, "Singapore"))).To(Succeed())
		Expect(vessel.LoadCargo(newBox(2, "Singapore"))).To(Succeed())

		full := newBox(3, "Singapore")
		Expect(vessel.CanLoad(full)).To(BeFalse())
		Expect(vessel.LoadCargo(full)).NotTo(Succeed())
		Expect(vessel.Cargo()).To(HaveLen(2))
	})

	It("should refuse containers bound elsewhere", func() {
		Expect(vessel.CanLoad(newBox(1, "Norway"))).To(BeFalse())
	})

	It("should refuse bulk cargo", func() {
		bulk, err := cargo.NewBulkCargo(cargoes, 1, "Singapore", 5, cargo.Grain)
		Expect(err).NotTo(HaveOccurred())
		Expect(vessel.CanLoad(bulk)).To(BeFalse())
	})

	Describe("CanDock", func() {
		It("should respect the berth container count", func() {
			Expect(vessel.LoadCargo(newBox(1, "Singapore"))).To(Succeed())
			Expect(vessel.LoadCargo(newBox(2, "Singapore"))).To(Succeed())

			Expect(vessel.CanDock(stubContainerBerth{id: 1, maxContainers: 1})).
				To(BeFalse())
			Expect(vessel.CanDock(stubContainerBerth{id: 1, maxContainers: 2})).
				To(BeTrue())
		})

		It("should refuse bulk berths", func() {
			Expect(vessel.CanDock(stubBulkBerth{id: 1, maxTonnage: 1000})).
				To(BeFalse())
		})
	})

	Describe("UnloadCargo", func() {
		It("should return every container and empty the ship", func() {
			Expect(vessel.LoadCargo(newBox(1, "Singapore"))).To(Succeed())
			Expect(vessel.LoadCargo(newBox(2, "Singapore"))).To(Succeed())

			unloaded, err := vessel.UnloadCargo()
			Expect(err).NotTo(HaveOccurred())
			Expect(unloaded).To(HaveLen(2))
			Expect(vessel.Cargo()).To(BeEmpty())
		})

		It("should fail on an empty ship", func() {
			_, err := vessel.UnloadCargo()
			Expect(errors.Is(err, ErrNoCargo)).To(BeTrue())
		})
	})
})

var _ = Describe("NauticalFlag", func() {
	It("should round-trip flag tokens", func() {
		for _, f := range []NauticalFlag{
			FlagNovember, FlagBravo, FlagWhiskey, FlagHotel,
		} {
			parsed, err := ParseNauticalFlag(f.String())
			Expect(err).NotTo(HaveOccurred())
			Expect(parsed).To(Equal(f))
		}
	})

	It("should reject unknown tokens", func() {
		_, err := ParseNauticalFlag("ZULU")
		Expect(err).To(HaveOccurred())
	})
})
