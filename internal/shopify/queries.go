package shopify

const productCardFields = `
  id
  handle
  title
  description
  tags
  featuredImage { url altText }
  priceRange { minVariantPrice { amount currencyCode } }
`

const queryProducts = `
query Products($first: Int!) {
  products(first: $first) {
    edges {
      node {
` + productCardFields + `
        images(first: 2) { edges { node { url altText } } }
        variants(first: 10) { edges { node { id title sku price { amount currencyCode } availableForSale } } }
        collections(first: 5) { edges { node { handle title } } }
      }
    }
  }
}`

const queryProductByHandle = `
query ProductByHandle($handle: String!) {
  product(handle: $handle) {
` + productCardFields + `
    vendor
    images(first: 5) { edges { node { url altText } } }
    variants(first: 10) { edges { node { id title sku price { amount currencyCode } availableForSale } } }
    collections(first: 5) { edges { node { handle title } } }
  }
}`

const queryCollections = `
query Collections($first: Int!) {
  collections(first: $first) {
    edges {
      node {
        id
        handle
        title
        description
        image { url altText }
      }
    }
  }
}`

const queryCollectionByHandle = `
query CollectionByHandle($handle: String!, $productsFirst: Int!) {
  collection(handle: $handle) {
    id
    handle
    title
    description
    image { url altText }
    products(first: $productsFirst) {
      edges {
        node {
` + productCardFields + `
          images(first: 1) { edges { node { url altText } } }
          availability: variants(first: 1) { edges { node { availableForSale } } }
        }
      }
    }
  }
}`

const querySellingPlanGroups = `
query SellingPlanGroups {
  sellingPlanGroups(first: 10) {
    edges {
      node {
        id
        name
        options { name values }
        sellingPlans(first: 10) {
          edges {
            node {
              id
              name
              pricingPolicies {
                ... on SellingPlanFixedPricingPolicy {
                  adjustmentType
                  adjustmentValue {
                    ... on SellingPlanPricingPolicyPercentageValue { percentage }
                  }
                }
              }
            }
          }
        }
        products(first: 100) { edges { node { id } } }
      }
    }
  }
}`

const checkoutNode = `
  checkout {
    id
    webUrl
    lineItems(first: 50) { edges { node { title quantity } } }
    totalPriceV2 { amount currencyCode }
  }
`

const checkoutFields = checkoutNode + `
  userErrors: checkoutUserErrors { field message code }
`

const mutationCheckoutCreate = `
mutation CheckoutCreate($input: CheckoutCreateInput!) {
  checkoutCreate(input: $input) {` + checkoutFields + `}
}`

const mutationCheckoutLineItemsAdd = `
mutation CheckoutLineItemsAdd($checkoutId: ID!, $lineItems: [CheckoutLineItemInput!]!) {
  checkoutLineItemsAdd(checkoutId: $checkoutId, lineItems: $lineItems) {` + checkoutFields + `}
}`

const mutationCheckoutDiscountCodeApply = `
mutation CheckoutDiscountCodeApply($checkoutId: ID!, $discountCode: String!) {
  checkoutDiscountCodeApplyV2(checkoutId: $checkoutId, discountCode: $discountCode) {` + checkoutFields + `}
}`

// checkoutLineItemsReplace reports CheckoutUserError values under userErrors.
const mutationCheckoutLineItemsReplace = `
mutation CheckoutLineItemsReplace($checkoutId: ID!, $lineItems: [CheckoutLineItemInput!]!) {
  checkoutLineItemsReplace(checkoutId: $checkoutId, lineItems: $lineItems) {` + checkoutNode + `
  userErrors { field message code }
}
}`
