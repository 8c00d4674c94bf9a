package telegram

import (
	"fmt"
	"strings"

	"boxbot/internal/domain/entity"
	"boxbot/internal/usecase"
)

const welcomeMessage = `Hello!
This is a bot helping you to manage your parcel-machine shipments!

Link your phone number with /init <phone_number> to get started.

*List of commands:*
/start - display this message
/init - link a phone number: /init <phone_number>
/consent - set data-collection consent: /consent yes or /consent no
/pending - list pending parcels
/delivered - list delivered parcels
/parcel - show one parcel: /parcel <shipment_number>
/open - open a compartment: /open <shipment_number>
/share - share a parcel with a friend: /share <shipment_number>
/qr - show a pickup QR code: /qr <shipment_number>
/opencode - show a manual open code: /opencode <shipment_number>
/setgeocheck - toggle location checks: /setgeocheck on|off
/setmachine - set your default machine: /setmachine <name>
/notifications - toggle arrival notifications: /notifications on|off
/register_device - link a companion device: /register_device <token>
/cancel - abort the ongoing operation

Beware, before you start using parcel commands you must *set your consent* to data collecting. You can set it by typing /consent yes or /consent no`

// groupMessage renders one display entry: a plain parcel, or a
// multicompartment shipment represented by its main member with the
// sibling compartments listed underneath.
func groupMessage(group *usecase.ParcelGroup) string {
	if len(group.Companions) == 0 {
		return parcelMessage(group.Representative)
	}

	var others strings.Builder
	for _, companion := range group.Companions {
		fmt.Fprintf(&others, "📦 `%s` from `%s`\n", companion.ShipmentNumber, senderName(companion))
	}

	return fmt.Sprintf("⚠️ *THIS IS MULTICOMPARTMENT CONTAINING %d PARCELS!* ⚠️\n\n%s\nOther parcels inside:\n%s",
		len(group.Companions)+1, parcelMessage(group.Representative), others.String())
}

// parcelMessage renders a single parcel. Parcels still in transit have no
// pickup point yet.
func parcelMessage(parcel *entity.Parcel) string {
	msg := fmt.Sprintf("📤 *Sender:* `%s`\n📦 *Shipment number:* `%s`\n📮 *Status:* `%s`\n",
		senderName(parcel), parcel.ShipmentNumber, parcel.Status)

	if point := parcel.PickupPoint; point != nil {
		msg += fmt.Sprintf("📥 *Pick up point:* `%s, %s %s %s`\n",
			point.Name, point.City, point.Street, point.BuildingNumber)
	}

	return msg
}

// deliveredMessage renders an already collected parcel.
func deliveredMessage(parcel *entity.Parcel) string {
	return fmt.Sprintf("📤 *Sender:* `%s`\n📦 *Shipment number:* `%s`\n📮 *Status:* `%s`\n",
		senderName(parcel), parcel.ShipmentNumber, parcel.Status)
}

// arrivalMessage announces a parcel that just became ready to pick up.
func arrivalMessage(parcel *entity.Parcel) string {
	return "🔔 A parcel is waiting for you!\n\n" + parcelMessage(parcel)
}

func senderName(parcel *entity.Parcel) string {
	if parcel.SenderName == "" {
		return "Unknown"
	}

	return parcel.SenderName
}
