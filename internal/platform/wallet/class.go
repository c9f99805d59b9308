package wallet

import (
	"fmt"

	"google.golang.org/api/walletobjects/v1"
)

// Class returns the generic class the builder's objects point at. Card rows
// pair the template slots in order and reference them by key.
func (b *Builder) Class() *walletobjects.GenericClass {
	slots := b.tmpl.Slots
	rows := make([]*walletobjects.CardRowTemplateInfo, 0, (len(slots)+1)/2)
	for i := 0; i < len(slots); i += 2 {
		if i+1 == len(slots) {
			rows = append(rows, &walletobjects.CardRowTemplateInfo{
				OneItem: &walletobjects.CardRowOneItem{Item: slotItem(slots[i].Key)},
			})
			break
		}
		rows = append(rows, &walletobjects.CardRowTemplateInfo{
			TwoItems: &walletobjects.CardRowTwoItems{
				StartItem: slotItem(slots[i].Key),
				EndItem:   slotItem(slots[i+1].Key),
			},
		})
	}

	return &walletobjects.GenericClass{
		Id: b.ClassID(),
		ClassTemplateInfo: &walletobjects.ClassTemplateInfo{
			CardTemplateOverride: &walletobjects.CardTemplateOverride{
				CardRowTemplateInfos: rows,
			},
		},
	}
}

func slotItem(key string) *walletobjects.TemplateItem {
	return &walletobjects.TemplateItem{
		FirstValue: &walletobjects.FieldSelector{
			Fields: []*walletobjects.FieldReference{
				{FieldPath: fmt.Sprintf("object.textModulesData['%s']", key)},
			},
		},
	}
}
